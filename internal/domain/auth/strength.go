package auth

import "unicode/utf8"

// Strength rates a candidate password for display next to a signup form.
type Strength struct {
	Score int    `json:"score"` // 0-5
	Label string `json:"label"`
}

var strengthLabels = []string{"Very Weak", "Weak", "Fair", "Good", "Strong"}

// PasswordStrength awards one point each for length >= 8, a lowercase
// letter, an uppercase letter, a digit and any other character.
func PasswordStrength(password string) Strength {
	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	score := 0
	for _, ok := range []bool{utf8.RuneCountInString(password) >= 8, lower, upper, digit, other} {
		if ok {
			score++
		}
	}

	label := strengthLabels[0]
	if score > 0 {
		label = strengthLabels[score-1]
	}
	return Strength{Score: score, Label: label}
}
