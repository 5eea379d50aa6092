// Package hangul formats KRW amounts as the long-form Korean numeral
// phrase printed on formal quotations and receipts.
package hangul

import "strings"

var digits = [10]string{"", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}

var smallUnits = [4]string{"", "십", "백", "천"}

var groupUnits = [5]string{"", "만", "억", "조", "경"}

// MoneyPhrase renders a non-negative KRW amount as its written-out
// reading, e.g. 1,000,000 -> "금백만원정". Digits are grouped by four
// with 만/억/조 suffixes and zero groups are skipped; zero itself reads
// "금영원정". Negative input is undefined.
func MoneyPhrase(amount int64) string {
	if amount == 0 {
		return "금영원정"
	}

	var groups []int64
	for n := amount; n > 0; n /= 10000 {
		groups = append(groups, n%10000)
	}

	var b strings.Builder
	b.WriteString("금")
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		b.WriteString(groupPhrase(groups[i]))
		b.WriteString(groupUnits[i])
	}
	b.WriteString("원정")
	return b.String()
}

func groupPhrase(group int64) string {
	var b strings.Builder
	for place := 3; place >= 0; place-- {
		div := int64(1)
		for i := 0; i < place; i++ {
			div *= 10
		}
		d := (group / div) % 10
		if d == 0 {
			continue
		}
		// "일십" and "일천" read awkwardly; the leading 일 is dropped
		// everywhere except the ones place.
		if d != 1 || place == 0 {
			b.WriteString(digits[d])
		}
		b.WriteString(smallUnits[place])
	}
	return b.String()
}
