package validation

import (
	"regexp"
	"strings"
)

// CardType is the issuer recognised from a card number prefix.
type CardType int

const (
	MasterCard CardType = iota + 1
	MaestroCard
	VisaCard
	JcbCard
	AmexCard
	DinersclubCard
	UnionpayCard
	DiscoverCard
)

const (
	cardPrefixLength    = 4
	cardNumberDelimiter = "-"
)

var cardTypeNames = map[CardType]string{
	MasterCard:     "mastercard",
	MaestroCard:    "maestro",
	VisaCard:       "visa",
	JcbCard:        "jcb",
	AmexCard:       "amex",
	DinersclubCard: "dinersclub",
	UnionpayCard:   "unionpay",
	DiscoverCard:   "discover",
}

func (t CardType) String() string {
	if name, ok := cardTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// DigitLength is the full number length for the issuer.
func (t CardType) DigitLength() int {
	switch t {
	case AmexCard:
		return 15
	case DinersclubCard:
		return 14
	default:
		return 16
	}
}

type cardPattern struct {
	cardType CardType
	re       *regexp.Regexp
}

// Order matters: the first matching issuer wins.
var cardPatterns = []cardPattern{
	{MasterCard, regexp.MustCompile(`^(5[1-5][0-9]{2}|222[1-9]|22[3-9][0-9]|2[3-6][0-9]{2}|27[01][0-9]|2720)$`)},
	{MaestroCard, regexp.MustCompile(`^(50[0-9]{2}|5[6-9][0-9]{2}|6304|67[0-9]{2})$`)},
	{VisaCard, regexp.MustCompile(`^4[0-9]{3}$`)},
	{JcbCard, regexp.MustCompile(`^(352[89]|35[3-8][0-9])$`)},
	{AmexCard, regexp.MustCompile(`^3[47][0-9]{2}$`)},
	{DinersclubCard, regexp.MustCompile(`^(30[0-5][0-9]|3095|36[0-9]{2}|3[89][0-9]{2})$`)},
	{UnionpayCard, regexp.MustCompile(`^62[0-9]{2}$`)},
	{DiscoverCard, regexp.MustCompile(`^(6011|64[4-9][0-9]|65[0-9]{2})$`)},
}

// MatchCardType returns the issuer of cardNumber judged by its first four
// characters. Shorter input never matches.
func MatchCardType(cardNumber string) (CardType, bool) {
	runes := []rune(cardNumber)
	if len(runes) < cardPrefixLength {
		return 0, false
	}
	prefix := string(runes[:cardPrefixLength])

	for _, p := range cardPatterns {
		if p.re.MatchString(prefix) {
			return p.cardType, true
		}
	}
	return 0, false
}

// CardDigitLength is the expected number length for a classification result;
// unmatched numbers are expected to have 16 digits.
func CardDigitLength(cardType CardType, matched bool) int {
	if !matched {
		return 16
	}
	return cardType.DigitLength()
}

// FormatCardNumber groups cardNumber for display. Amex and Diners Club use
// 4-6-rest, every other issuer (and unmatched input) uses groups of four.
// Partial input is formatted as far as it goes.
func FormatCardNumber(cardNumber string, cardType CardType) string {
	runes := []rune(cardNumber)

	switch cardType {
	case AmexCard, DinersclubCard:
		if len(runes) <= 4 {
			return string(runes)
		}
		var b strings.Builder
		b.WriteString(string(runes[:4]))
		b.WriteString(cardNumberDelimiter)
		if len(runes) <= 10 {
			b.WriteString(string(runes[4:]))
			return b.String()
		}
		b.WriteString(string(runes[4:10]))
		b.WriteString(cardNumberDelimiter)
		b.WriteString(string(runes[10:]))
		return b.String()
	default:
		chunks := make([]string, 0, len(runes)/4+1)
		for start := 0; start < len(runes); start += 4 {
			end := min(start+4, len(runes))
			chunks = append(chunks, string(runes[start:end]))
		}
		return strings.Join(chunks, cardNumberDelimiter)
	}
}

// CardSummary is everything the card form needs for one keystroke.
type CardSummary struct {
	Type      CardType
	Matched   bool
	Digits    int
	Formatted string
	Complete  bool
}

// DescribeCard classifies and formats cardNumber in one pass.
func DescribeCard(cardNumber string) CardSummary {
	cardType, matched := MatchCardType(cardNumber)
	digits := CardDigitLength(cardType, matched)
	return CardSummary{
		Type:      cardType,
		Matched:   matched,
		Digits:    digits,
		Formatted: FormatCardNumber(cardNumber, cardType),
		Complete:  matched && digitsOnly.MatchString(cardNumber) && len(cardNumber) == digits,
	}
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)
