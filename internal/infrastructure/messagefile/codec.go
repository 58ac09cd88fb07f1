package messagefile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/numtheory"
)

// maxTokenSize bounds a single decimal token; a 1024-bit value needs 309 digits.
const maxTokenSize = 1 << 20

// EncodeCiphertext writes each value in base 10 followed by a single space.
func EncodeCiphertext(w io.Writer, cipher rsa.Ciphertext) error {
	bw := bufio.NewWriter(w)
	for i, v := range cipher {
		if v == nil {
			return fmt.Errorf("%w: missing value at position %d", rsa.ErrMalformedNumber, i)
		}
		if _, err := bw.WriteString(numtheory.FormatDecimal(v)); err != nil {
			return fmt.Errorf("failed to write ciphertext: %w", err)
		}
		if err := bw.WriteByte(' '); err != nil {
			return fmt.Errorf("failed to write ciphertext: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush ciphertext: %w", err)
	}
	return nil
}

// DecodeCiphertext parses whitespace separated decimal tokens. Blank input yields
// an empty ciphertext.
func DecodeCiphertext(r io.Reader) (rsa.Ciphertext, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	cipher := rsa.Ciphertext{}
	for scanner.Scan() {
		v, err := numtheory.ParseDecimal(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("failed to parse token %d: %w", len(cipher)+1, err)
		}
		cipher = append(cipher, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ciphertext: %w", err)
	}
	return cipher, nil
}

// DecodePlaintext reads r line by line and terminates every line, including the
// last one, with a newline. Carriage returns are message bytes and are kept.
func DecodePlaintext(r io.Reader) ([]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(scanRawLines)

	var out []byte
	for scanner.Scan() {
		out = append(out, scanner.Bytes()...)
		out = append(out, '\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plaintext: %w", err)
	}
	return out, nil
}

// scanRawLines is bufio.ScanLines without the trailing \r drop.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
