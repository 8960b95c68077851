package validation

import (
	"mime"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Regex patterns
var (
	// Letters, digits, spaces and . ' -
	personNameRegex = regexp.MustCompile(`^[\p{L}0-9 .'-]+$`)

	// Letters, digits, whitespace and , . ' -
	companyTextRegex = regexp.MustCompile(`^[a-zA-Z0-9\s,.'-]+$`)

	mobileRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// passwordSpecials is the punctuation a strong password may (and must) use.
const passwordSpecials = "$!%*?&@"

var allowedEmailTLDs = map[string]bool{"com": true, "net": true, "org": true}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("objectid", ObjectID)
	_ = v.RegisterValidation("person_name", PersonName)
	_ = v.RegisterValidation("company_name", CompanyText)
	_ = v.RegisterValidation("address", CompanyText)
	_ = v.RegisterValidation("mobile_number", MobileNumber)
	_ = v.RegisterValidation("strong_password", StrongPassword)
	_ = v.RegisterValidation("email_tld", EmailTLD)
	_ = v.RegisterValidation("json_media", JSONMedia)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("past_date", PastDate)
}

// ObjectID accepts the store's native identifier format (canonical UUID).
func ObjectID(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if len(val) != 36 {
		return false
	}
	_, err := uuid.Parse(val)
	return err == nil
}

func PersonName(fl validator.FieldLevel) bool {
	return personNameRegex.MatchString(fl.Field().String())
}

// CompanyText validates company names and addresses.
func CompanyText(fl validator.FieldLevel) bool {
	return companyTextRegex.MatchString(fl.Field().String())
}

func MobileNumber(fl validator.FieldLevel) bool {
	return mobileRegex.MatchString(fl.Field().String())
}

// StrongPassword requires at least one lowercase letter, one uppercase letter,
// one digit and one of $!%*?&@, and nothing outside those classes.
// Length is left to min/max rules.
func StrongPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// EmailTLD restricts addresses to .com, .net and .org domains with at most four labels.
// It is meant to follow the standard "email" tag.
func EmailTLD(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	at := strings.LastIndex(val, "@")
	if at < 0 {
		return false
	}
	labels := strings.Split(strings.ToLower(val[at+1:]), ".")
	if len(labels) < 2 || len(labels) > 4 {
		return false
	}
	return allowedEmailTLDs[labels[len(labels)-1]]
}

// JSONMedia accepts Content-Type values whose media type is application/json.
func JSONMedia(fl validator.FieldLevel) bool {
	mediaType, _, err := mime.ParseMediaType(fl.Field().String())
	return err == nil && mediaType == "application/json"
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		// Supplementary planes are mostly emoji and pictographs
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// PastDate accepts a YYYY-MM-DD date that lies before today.
func PastDate(fl validator.FieldLevel) bool {
	d, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	return d.Before(time.Now().UTC().Truncate(24 * time.Hour))
}
