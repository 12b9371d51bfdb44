package validate

// Network identifies a supported payment card network.
type Network string

const (
	NetworkVisa        Network = "visa"
	NetworkMastercard  Network = "mastercard"
	NetworkAmex        Network = "amex"
	NetworkDiscover    Network = "discover"
	NetworkUnsupported Network = ""
)

// CardVerdict extends Verdict with the detected network tag. The card
// number itself is never transformed; Normalized echoes the digit string
// as submitted.
type CardVerdict struct {
	Verdict
	Network Network
}

func cardFail(code Code, message string) CardVerdict {
	return CardVerdict{Verdict: fail(code, message)}
}

// CardNumber validates a payment card number: digits only (separators are
// not stripped — the input must already be clean), length 15 or 16,
// a recognized network prefix, then the Luhn checksum.
func CardNumber(raw string) CardVerdict {
	if raw == "" {
		return cardFail(CodeRequired, "card number is required")
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return cardFail(CodeFormat, "card number must contain only digits")
		}
	}
	if len(raw) != 15 && len(raw) != 16 {
		return cardFail(CodeFormat, "card number must be 15 or 16 digits")
	}

	network := detectNetwork(raw)
	if network == NetworkUnsupported {
		return cardFail(CodeUnsupported, "card network is not supported")
	}

	if !luhnValid(raw) {
		return cardFail(CodeChecksum, "card number failed checksum validation")
	}

	return CardVerdict{Verdict: ok(raw), Network: network}
}

// detectNetwork matches the fixed numeric prefix ranges of the four
// supported networks. The input is already known to be 15 or 16 digits.
func detectNetwork(digits string) Network {
	length := len(digits)
	p1 := prefixVal(digits, 1)
	p2 := prefixVal(digits, 2)
	p3 := prefixVal(digits, 3)
	p4 := prefixVal(digits, 4)
	p6 := prefixVal(digits, 6)

	switch {
	case length == 16 && p1 == 4:
		return NetworkVisa
	case length == 16 && p2 >= 51 && p2 <= 55:
		return NetworkMastercard
	case length == 16 && p4 >= 2221 && p4 <= 2720:
		return NetworkMastercard
	case length == 15 && (p2 == 34 || p2 == 37):
		return NetworkAmex
	case length == 16 && p4 == 6011:
		return NetworkDiscover
	case length == 16 && p3 >= 644 && p3 <= 649:
		return NetworkDiscover
	case length == 16 && p2 == 65:
		return NetworkDiscover
	// UnionPay co-branded range issued on the Discover network.
	case length == 16 && p6 >= 622126 && p6 <= 622925:
		return NetworkDiscover
	case length == 16 && p4 >= 6282 && p4 <= 6288:
		return NetworkDiscover
	}
	return NetworkUnsupported
}

func prefixVal(digits string, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		v = v*10 + int(digits[i]-'0')
	}
	return v
}

// luhnValid runs the mod-10 checksum: from the rightmost digit, double
// every second digit, subtract 9 from doubled digits above 9, and require
// the total to be congruent to 0 mod 10.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
