package codec

import mp "github.com/unkn0wn-root/packmsg"

// Extension builds a Codec[[]byte] bound to a single extension type code.
// Encode wraps the payload in mp.Ext(code, data); decode requires an
// Extension variant whose Type matches code exactly, else
// ExtensionTypeMismatch.
func Extension(code int8) Codec[[]byte] {
	return Codec[[]byte]{
		encode: func(data []byte) mp.Value {
			return mp.Ext(code, data)
		},
		decode: func(v mp.Value) ([]byte, error) {
			ext, ok := v.AsExtension()
			if !ok {
				return nil, typeMismatch("Extension", v)
			}
			if ext.Type != code {
				return nil, mp.ErrExtensionTypeMismatch{Expected: code, Got: ext.Type}
			}
			return ext.Data, nil
		},
	}
}

// ExtPair is the (type code, payload) pair AnyExtension decodes into, for
// callers that need to dispatch on an extension's type code at runtime
// rather than binding a Codec to one code ahead of time.
type ExtPair struct {
	Type int8
	Data []byte
}

// AnyExtension is a Codec for any Extension variant, regardless of type
// code. It is the escape hatch for extension-typed fields whose code isn't
// known statically.
var AnyExtension = Codec[ExtPair]{
	encode: func(p ExtPair) mp.Value {
		return mp.Ext(p.Type, p.Data)
	},
	decode: func(v mp.Value) (ExtPair, error) {
		ext, ok := v.AsExtension()
		if !ok {
			return ExtPair{}, typeMismatch("Extension", v)
		}
		return ExtPair{Type: ext.Type, Data: ext.Data}, nil
	},
}
