// Package format renders prices and review timestamps for display.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const reviewDateLayout = "2006.01.02"

var (
	printer = message.NewPrinter(language.English)
	seoul   = loadSeoul()
)

func loadSeoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// Price groups thousands with commas: 129000 becomes "129,000".
func Price(amount int) string {
	return printer.Sprintf("%d", amount)
}

// Won is Price with the currency suffix used on product cards.
func Won(amount int) string {
	return Price(amount) + "원"
}

// ReviewTime describes how long ago t was relative to now. Anything older
// than a week is shown as a date in Korean time.
func ReviewTime(now, t time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return "unknown"
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff/(24*time.Hour)))
	default:
		return t.In(seoul).Format(reviewDateLayout)
	}
}
