package auth

import "crypto/subtle"

// VerifyCredentials compares a submitted username/password pair against the
// configured pair in constant time. Both comparisons always run so timing
// reveals nothing about which half matched.
func VerifyCredentials(gotUsername, gotPassword, wantUsername, wantPassword string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(gotUsername), []byte(wantUsername))
	passMatch := subtle.ConstantTimeCompare([]byte(gotPassword), []byte(wantPassword))
	return userMatch == 1 && passMatch == 1
}
