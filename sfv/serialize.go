package sfv

import (
	"strconv"
	"unicode/utf8"
)

const lowerhex = "0123456789abcdef"

// Serializer renders value trees into canonical field value bytes. It
// keeps a scratch buffer that is reused across calls, so a single
// serializer must not be used concurrently; independent serializers
// are fully isolated.
type Serializer struct {
	buf []byte
}

// NewSerializer creates a serializer with an empty scratch buffer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// WriteItem renders an item field value.
func (s *Serializer) WriteItem(it Item) ([]byte, error) {
	s.buf = s.buf[:0]
	if err := s.writeItem(it); err != nil {
		return nil, err
	}
	return s.output(), nil
}

// WriteList renders a list field value. An empty list yields empty
// bytes.
func (s *Serializer) WriteList(list List) ([]byte, error) {
	s.buf = s.buf[:0]
	for i, m := range list {
		if i > 0 {
			s.buf = append(s.buf, ", "...)
		}
		if err := s.writeMember(m); err != nil {
			return nil, err
		}
	}
	return s.output(), nil
}

// WriteDictionary renders a dictionary field value. An empty
// dictionary yields empty bytes. A member that is the bare boolean
// true is emitted as its key and parameters alone.
func (s *Serializer) WriteDictionary(dict *Dictionary) ([]byte, error) {
	s.buf = s.buf[:0]
	for i, e := range dict.Entries() {
		if i > 0 {
			s.buf = append(s.buf, ", "...)
		}
		if err := s.writeKey(e.Key); err != nil {
			return nil, err
		}
		if !e.Value.IsInnerList() && e.Value.item.Bare.Equal(Boolean(true)) {
			if err := s.writeParameters(e.Value.item.Params); err != nil {
				return nil, err
			}
			continue
		}
		s.buf = append(s.buf, '=')
		if err := s.writeMember(e.Value); err != nil {
			return nil, err
		}
	}
	return s.output(), nil
}

// WriteItem renders an item field value with a one-shot serializer.
func WriteItem(it Item) ([]byte, error) {
	return NewSerializer().WriteItem(it)
}

// WriteList renders a list field value with a one-shot serializer.
func WriteList(list List) ([]byte, error) {
	return NewSerializer().WriteList(list)
}

// WriteDictionary renders a dictionary field value with a one-shot
// serializer.
func WriteDictionary(dict *Dictionary) ([]byte, error) {
	return NewSerializer().WriteDictionary(dict)
}

// output copies the scratch buffer so the caller owns the result.
func (s *Serializer) output() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

func (s *Serializer) writeMember(m Member) error {
	if m.IsInnerList() {
		return s.writeInnerList(m.inner)
	}
	return s.writeItem(m.item)
}

func (s *Serializer) writeItem(it Item) error {
	if err := s.writeBareItem(it.Bare); err != nil {
		return err
	}
	return s.writeParameters(it.Params)
}

func (s *Serializer) writeInnerList(il InnerList) error {
	s.buf = append(s.buf, '(')
	for i, it := range il.Items {
		if i > 0 {
			s.buf = append(s.buf, ' ')
		}
		if err := s.writeItem(it); err != nil {
			return err
		}
	}
	s.buf = append(s.buf, ')')
	return s.writeParameters(il.Params)
}

// writeParameters emits ";key" or ";key=value" per entry. A boolean
// true value is elided to the bare key.
func (s *Serializer) writeParameters(params *Parameters) error {
	for _, e := range params.Entries() {
		s.buf = append(s.buf, ';')
		if err := s.writeKey(e.Key); err != nil {
			return err
		}
		if e.Value.Equal(Boolean(true)) {
			continue
		}
		s.buf = append(s.buf, '=')
		if err := s.writeBareItem(e.Value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) writeKey(key string) error {
	if !isValidKey(key) {
		return ErrInvalidKey
	}
	s.buf = append(s.buf, key...)
	return nil
}

func (s *Serializer) writeBareItem(b BareItem) error {
	switch b.typ {
	case TypeBoolean:
		if b.boolVal {
			s.buf = append(s.buf, "?1"...)
		} else {
			s.buf = append(s.buf, "?0"...)
		}
		return nil

	case TypeInteger:
		if b.intVal < -MaxNumeric || b.intVal > MaxNumeric {
			return ErrInvalidIntegerOrDecimal
		}
		s.buf = strconv.AppendInt(s.buf, b.intVal, 10)
		return nil

	case TypeDecimal:
		s.buf = b.decVal.AppendCanonical(s.buf)
		return nil

	case TypeString:
		return s.writeString(b.strVal)

	case TypeToken:
		if !IsValidToken(b.strVal) {
			return ErrInvalidToken
		}
		s.buf = append(s.buf, b.strVal...)
		return nil

	case TypeByteSequence:
		// Stored base64 text goes out verbatim; content correctness is
		// the caller's concern.
		s.buf = append(s.buf, ':')
		s.buf = append(s.buf, b.strVal...)
		s.buf = append(s.buf, ':')
		return nil

	case TypeDate:
		if b.intVal < -MaxNumeric || b.intVal > MaxNumeric {
			return ErrInvalidDate
		}
		s.buf = append(s.buf, '@')
		s.buf = strconv.AppendInt(s.buf, b.intVal, 10)
		return nil

	case TypeDisplayString:
		return s.writeDisplayString(b.strVal)

	default:
		return ErrInvalidItem
	}
}

func (s *Serializer) writeString(v string) error {
	s.buf = append(s.buf, '"')
	for i := 0; i < len(v); i++ {
		b := v[i]
		if !isPrintable(b) {
			return ErrInvalidString
		}
		if b == '"' || b == '\\' {
			s.buf = append(s.buf, '\\')
		}
		s.buf = append(s.buf, b)
	}
	s.buf = append(s.buf, '"')
	return nil
}

func (s *Serializer) writeDisplayString(v string) error {
	if !utf8.ValidString(v) {
		return ErrInvalidDisplayString
	}
	s.buf = append(s.buf, '%', '"')
	for i := 0; i < len(v); i++ {
		b := v[i]
		if b == '%' || b == '"' || b <= 0x1F || b >= 0x7F {
			s.buf = append(s.buf, '%', lowerhex[b>>4], lowerhex[b&0xF])
		} else {
			s.buf = append(s.buf, b)
		}
	}
	s.buf = append(s.buf, '"')
	return nil
}
