package id

// Variant is the layout family encoded in the top two bits of byte 8.
type Variant int

// Variants, by the top two bits of byte 8: 00 and 01 are NCS, 10 is RFC 4122
// and 11 is Microsoft.
const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
)

func variantOf(b byte) Variant {
	switch b >> 6 {
	case 0b10:
		return VariantRFC4122
	case 0b11:
		return VariantMicrosoft
	default:
		return VariantNCS
	}
}

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "reserved for NCS compatibility"
	case VariantRFC4122:
		return "specified in RFC 4122"
	case VariantMicrosoft:
		return "reserved for Microsoft compatibility"
	default:
		return "unknown"
	}
}
