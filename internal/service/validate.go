package service

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/mvillar/fastfeet-front/internal/model"
)

const (
	minPasswordLen = 8
	cpfLen         = 11
	zipcodeLen     = 8
)

func validateLoginDTO(input model.LoginDTO) *model.APIError {
	if !validCPF(input.CPF) {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidCPFMessage,
		}
	}

	if len(input.Password) < minPasswordLen {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrPasswordTooShortMessage,
		}
	}

	return nil
}

func validateCreateOrderDTO(input model.CreateOrderDTO) *model.APIError {
	if strings.TrimSpace(input.Title) == "" {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrTitleRequiredMessage,
		}
	}

	if strings.TrimSpace(input.RecipientID) == "" {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrRecipientRequiredMessage,
		}
	}

	return nil
}

func validateCreateRecipientDTO(input model.CreateRecipientDTO) *model.APIError {
	required := []struct {
		value   string
		message string
	}{
		{input.FullName, model.ErrFullNameRequiredMessage},
		{input.State, model.ErrStateRequiredMessage},
		{input.City, model.ErrCityRequiredMessage},
		{input.Neighborhood, model.ErrNeighborhoodRequiredMessage},
		{input.Address, model.ErrAddressRequiredMessage},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return &model.APIError{
				Code:    http.StatusBadRequest,
				Message: field.message,
			}
		}
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidEmailMessage,
		}
	}

	if !validZipcode(input.Zipcode) {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidZipcodeMessage,
		}
	}

	return nil
}

// validZipcode accepts exactly 8 digits. CEPs may start with zero, which
// is why the value is validated as a string.
func validZipcode(zipcode string) bool {
	if len(zipcode) != zipcodeLen {
		return false
	}

	for _, r := range zipcode {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// validCPF checks the two mod-11 verification digits of a Brazilian CPF.
// Punctuation is stripped first, and the well-known all-repeated-digit
// values are rejected even though their check digits add up.
func validCPF(cpf string) bool {
	digits := make([]int, 0, cpfLen)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) != cpfLen {
		return false
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if cpfCheckDigit(digits[:9], 10) != digits[9] {
		return false
	}

	return cpfCheckDigit(digits[:10], 11) == digits[10]
}

// cpfCheckDigit computes one verification digit: a weighted sum with
// weights counting down from firstWeight, times ten, mod eleven, with 10
// collapsing to 0.
func cpfCheckDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (firstWeight - i)
	}

	remainder := (sum * 10) % 11
	if remainder == 10 {
		remainder = 0
	}

	return remainder
}
