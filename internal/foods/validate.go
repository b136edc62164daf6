package foods

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/lmedina-dev/tastebite-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Payload is the raw food payload as decoded from a request body. Pointer and
// any-typed fields distinguish "absent" from "present but malformed" so that
// partial updates validate only what was supplied.
type Payload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	Category    *string `json:"category"`
	Rating      any     `json:"rating"`
	PrepTime    any     `json:"prepTime"`
	IsVeg       *bool   `json:"isVeg"`
	IsSpicy     *bool   `json:"isSpicy"`
	IsPopular   *bool   `json:"isPopular"`
}

// Rule is one validation step. Rules are pure: they inspect the payload and
// report field errors without mutating anything. The pipeline runs every rule
// and accumulates the results; nothing short-circuits.
type Rule func(Payload) []types.FieldError

// RunRules applies each rule in order and accumulates the field errors.
func RunRules(rules []Rule, payload Payload) []types.FieldError {
	var errs []types.FieldError
	for _, rule := range rules {
		errs = append(errs, rule(payload)...)
	}
	return errs
}

// CreateRules validates a full food payload; every core field is required.
func CreateRules() []Rule {
	return []Rule{
		nameRule(true),
		descriptionRule(true),
		priceRule(true),
		imageURLRule(true),
		categoryRule(true),
		ratingRule(),
		prepTimeRule(),
	}
}

// UpdateRules validates a partial payload; supplied fields must still be valid.
func UpdateRules() []Rule {
	return []Rule{
		nameRule(false),
		descriptionRule(false),
		priceRule(false),
		imageURLRule(false),
		categoryRule(false),
		ratingRule(),
		prepTimeRule(),
	}
}

var (
	urlValidator  = validator.New()
	imageExtRegex = regexp.MustCompile(`\.(jpe?g|png|gif|webp)$`)
)

func fieldError(param, msg string, value any) types.FieldError {
	return types.FieldError{Param: param, Msg: msg, Location: "body", Value: value}
}

func nameRule(required bool) Rule {
	return func(p Payload) []types.FieldError {
		if p.Name == nil {
			if required {
				return []types.FieldError{fieldError("name", "Name is required", nil)}
			}
			return nil
		}
		trimmed := strings.TrimSpace(*p.Name)
		if required && trimmed == "" {
			return []types.FieldError{fieldError("name", "Name is required", *p.Name)}
		}
		if n := utf8.RuneCountInString(trimmed); n < 2 || n > 100 {
			return []types.FieldError{fieldError("name", "Name must be between 2 and 100 characters", *p.Name)}
		}
		return nil
	}
}

func descriptionRule(required bool) Rule {
	return func(p Payload) []types.FieldError {
		if p.Description == nil {
			if required {
				return []types.FieldError{fieldError("description", "Description is required", nil)}
			}
			return nil
		}
		trimmed := strings.TrimSpace(*p.Description)
		if required && trimmed == "" {
			return []types.FieldError{fieldError("description", "Description is required", *p.Description)}
		}
		if n := utf8.RuneCountInString(trimmed); n < 10 || n > 1000 {
			return []types.FieldError{fieldError("description", "Description must be between 10 and 1000 characters", *p.Description)}
		}
		return nil
	}
}

func priceRule(required bool) Rule {
	return func(p Payload) []types.FieldError {
		if p.Price == nil {
			if required {
				return []types.FieldError{fieldError("price", "Price must be a positive number", nil)}
			}
			return nil
		}
		price, ok := parseDecimal(p.Price)
		if !ok || !price.IsPositive() {
			return []types.FieldError{fieldError("price", "Price must be a positive number", p.Price)}
		}
		return nil
	}
}

func imageURLRule(required bool) Rule {
	return func(p Payload) []types.FieldError {
		if p.ImageURL == nil {
			if required {
				return []types.FieldError{fieldError("imageUrl", "Image URL must be a valid URL", nil)}
			}
			return nil
		}
		raw := strings.TrimSpace(*p.ImageURL)
		if err := urlValidator.Var(raw, "required,url"); err != nil {
			return []types.FieldError{fieldError("imageUrl", "Image URL must be a valid URL", *p.ImageURL)}
		}
		if !imageExtRegex.MatchString(raw) {
			return []types.FieldError{fieldError("imageUrl", "Image URL must be a valid image URL", *p.ImageURL)}
		}
		return nil
	}
}

func categoryRule(required bool) Rule {
	return func(p Payload) []types.FieldError {
		if p.Category == nil {
			if required {
				return []types.FieldError{fieldError("category", "Category is required", nil)}
			}
			return nil
		}
		if strings.TrimSpace(*p.Category) == "" {
			msg := "Category cannot be empty"
			if required {
				msg = "Category is required"
			}
			return []types.FieldError{fieldError("category", msg, *p.Category)}
		}
		return nil
	}
}

func ratingRule() Rule {
	return func(p Payload) []types.FieldError {
		if p.Rating == nil {
			return nil
		}
		rating, ok := parseFloat(p.Rating)
		if !ok || rating < 0 || rating > 5 {
			return []types.FieldError{fieldError("rating", "Rating must be between 0 and 5", p.Rating)}
		}
		return nil
	}
}

func prepTimeRule() Rule {
	return func(p Payload) []types.FieldError {
		if p.PrepTime == nil {
			return nil
		}
		minutes, ok := parseFloat(p.PrepTime)
		if !ok || minutes != float64(int(minutes)) || minutes < 0 {
			return []types.FieldError{fieldError("prepTime", "Prep time must be a non-negative integer", p.PrepTime)}
		}
		return nil
	}
}

func parseDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

// parseFloat mirrors parseDecimal: JSON numbers and numeric strings are both
// coerced, so every numeric field follows the same policy.
func parseFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
