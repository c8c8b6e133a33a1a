// Package cookie reads and writes the byte values the module keeps in HTTP
// cookies.
//
// A Manager built with New signs every value with HMAC-SHA256 under a key
// derived from each secret with HKDF. The first secret signs, all secrets
// verify, so a secret can be rotated by putting
// the new one first. A Manager built with NewUnsigned only base64url-encodes
// values; it exists for login flows outside this module that cannot share a
// secret.
//
//	cookies, err := cookie.New([]string{os.Getenv("COOKIE_SECRETS")}, cookie.WithPath("/food"))
//	if err != nil {
//		return err
//	}
//	_ = cookies.Set(w, "loggedInUser", raw)
//	raw, err := cookies.Get(r, "loggedInUser")
//
// Get reports ErrCookieNotFound for a missing cookie and ErrInvalidSignature
// or ErrInvalidFormat for a value the Manager did not write.
package cookie
