package crack

// CommonSecrets returns a built-in list of secrets that show up over and
// over in real-world HS256 deployments: framework defaults, placeholder
// values that survive into production, and the usual weak passwords. The
// list is small on purpose; it is a first pass before reaching for a real
// wordlist.
func CommonSecrets() []string {
	return []string{
		"secret",
		"password",
		"admin",
		"jwt",
		"jwtkey",
		"key",
		"secretkey",
		"mysecret",
		"test",
		"123456",
		"password123",
		"admin123",
		"letmein",
		"qwerty",
		"default",
		"changeme",
		"welcome",
		"guest",
		"root",
		"user",
		"login",
		"auth",
		"token",
		"session",
		"security",
		"private",
		"public",
		"development",
		"production",
		"staging",
		"debug",
		"temp",
		"temporary",
		"example",
		"sample",
		"demo",
		"test123",
		"testkey",
		"devkey",
		"prodkey",
	}
}
