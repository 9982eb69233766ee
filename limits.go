package bmpsteg

type Limits struct {
	MaxPayloadLen uint32 // applies to embedded and recovered payloads
	MaxCarrierLen uint64
}

func defaultLimits() Limits {
	return Limits{
		MaxPayloadLen: 256 << 20, // 256 MiB
		MaxCarrierLen: 4 << 30,   // 4 GiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxPayloadLen == 0 {
		l.MaxPayloadLen = d.MaxPayloadLen
	}
	if l.MaxCarrierLen == 0 {
		l.MaxCarrierLen = d.MaxCarrierLen
	}
	return l
}
