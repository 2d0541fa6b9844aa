package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffSize is how much of the input is inspected before choosing a decoder.
const sniffSize = 4096

type bom struct {
	mark    []byte
	decoder func() *xenc.Decoder
}

// UTF-8 first so its mark is discarded rather than decoded.
var boms = []bom{
	{mark: []byte{0xEF, 0xBB, 0xBF}},
	{mark: []byte{0xFF, 0xFE}, decoder: func() *xenc.Decoder {
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	}},
	{mark: []byte{0xFE, 0xFF}, decoder: func() *xenc.Decoder {
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	}},
}

// charsets maps chardet results to encodings. UTF-8 maps to nil (no decoding).
var charsets = map[string]xenc.Encoding{
	"UTF-8":        nil,
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
}

// NewUTF8Reader returns a reader yielding the input as UTF-8.
//
// Filings downloaded from the GST portal are UTF-8, but files that went
// through a spreadsheet or a Windows editor on the way may carry a BOM, be
// UTF-16, or use a legacy code page for supplier names. Resolution order:
// byte-order mark, valid UTF-8 as-is, chardet guess, Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(head, b.mark) {
			continue
		}

		if b.decoder == nil {
			_, _ = br.Discard(len(b.mark))
			return br, nil
		}

		return transform.NewReader(br, b.decoder()), nil
	}

	if utf8.Valid(trimPartialRune(head)) {
		return br, nil
	}

	return decode(br, detect(head)), nil
}

// trimPartialRune drops a multi-byte sequence cut off by the end of the peek
// window.
func trimPartialRune(head []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(head); i++ {
		tail := head[len(head)-i:]
		if !utf8.RuneStart(tail[0]) {
			continue
		}

		if !utf8.FullRune(tail) {
			return head[:len(head)-i]
		}

		break
	}

	return head
}

func detect(head []byte) xenc.Encoding {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return charmap.Windows1252
	}

	e, ok := charsets[result.Charset]
	if !ok {
		return charmap.Windows1252
	}

	return e
}

func decode(r io.Reader, e xenc.Encoding) io.Reader {
	if e == nil {
		return r
	}

	return transform.NewReader(r, e.NewDecoder())
}
