package encrypt

// ServerVerificationHash is used by the game client to verify
// communication with a genuine server during connection initialization.
//
// The client sends an integer value to the server in the INIT_INIT
// client packet, referred to as the challenge. The server hashes the
// value and sends the hash back in the INIT_INIT server packet. The
// client hashes the value itself and compares it to the hash sent by
// the server, dropping the connection if they don't match.
//
// Oversized challenges (larger than 11,092,110) may result in negative
// hash values, which cannot be represented properly in the protocol.
func ServerVerificationHash(challenge int) int {
	challenge++
	return 110905 +
		(mod(challenge, 9)+1)*mod(11092004-challenge, (mod(challenge, 11)+1)*119)*119 +
		mod(challenge, 2004)
}

// mod is a truncated-toward-zero remainder, matching the behavior the
// original hash formula relies on.
func mod(a, b int) int {
	return a % b
}
