// Package messagefile reads and writes the plain text files exchanged by the CLI:
// plaintext messages and ciphertexts stored as space separated decimal numbers.
package messagefile
