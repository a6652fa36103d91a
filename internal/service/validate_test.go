package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvillar/fastfeet-front/internal/model"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{name: "valid", cpf: "52998224725", want: true},
		{name: "valid with punctuation", cpf: "529.982.247-25", want: true},
		{name: "all repeated digits", cpf: "11111111111", want: false},
		{name: "all zeros", cpf: "00000000000", want: false},
		{name: "wrong first check digit", cpf: "52998224735", want: false},
		{name: "wrong second check digit", cpf: "52998224724", want: false},
		{name: "too short", cpf: "5299822472", want: false},
		{name: "too long", cpf: "529982247251", want: false},
		{name: "empty", cpf: "", want: false},
		{name: "letters", cpf: "5299822472a", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validCPF(tt.cpf))
		})
	}
}

func TestValidZipcode(t *testing.T) {
	tests := []struct {
		name    string
		zipcode string
		want    bool
	}{
		{name: "eight digits", zipcode: "01001000", want: true},
		{name: "leading zero kept", zipcode: "00000001", want: true},
		{name: "seven digits", zipcode: "0100100", want: false},
		{name: "nine digits", zipcode: "010010001", want: false},
		{name: "non numeric", zipcode: "0100100a", want: false},
		{name: "empty", zipcode: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validZipcode(tt.zipcode))
		})
	}
}

func TestValidateLoginDTO(t *testing.T) {
	apiErr := validateLoginDTO(model.LoginDTO{CPF: "11111111111", Password: "supersecret"})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, model.ErrInvalidCPFMessage, apiErr.Message)

	apiErr = validateLoginDTO(model.LoginDTO{CPF: "52998224725", Password: "short"})
	require.NotNil(t, apiErr)
	assert.Equal(t, model.ErrPasswordTooShortMessage, apiErr.Message)

	assert.Nil(t, validateLoginDTO(model.LoginDTO{CPF: "529.982.247-25", Password: "supersecret"}))
}

func TestValidateCreateOrderDTO(t *testing.T) {
	apiErr := validateCreateOrderDTO(model.CreateOrderDTO{RecipientID: "r1"})
	require.NotNil(t, apiErr)
	assert.Equal(t, model.ErrTitleRequiredMessage, apiErr.Message)

	apiErr = validateCreateOrderDTO(model.CreateOrderDTO{Title: "Box"})
	require.NotNil(t, apiErr)
	assert.Equal(t, model.ErrRecipientRequiredMessage, apiErr.Message)

	assert.Nil(t, validateCreateOrderDTO(model.CreateOrderDTO{Title: "Box", RecipientID: "r1"}))
}

func TestValidateCreateRecipientDTO(t *testing.T) {
	valid := model.CreateRecipientDTO{
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		State:        "SP",
		City:         "Sao Paulo",
		Neighborhood: "Centro",
		Address:      "Rua A, 1",
		Zipcode:      "01001000",
	}
	assert.Nil(t, validateCreateRecipientDTO(valid))

	tests := []struct {
		name    string
		mutate  func(*model.CreateRecipientDTO)
		message string
	}{
		{"missing full name", func(d *model.CreateRecipientDTO) { d.FullName = " " }, model.ErrFullNameRequiredMessage},
		{"missing state", func(d *model.CreateRecipientDTO) { d.State = "" }, model.ErrStateRequiredMessage},
		{"missing city", func(d *model.CreateRecipientDTO) { d.City = "" }, model.ErrCityRequiredMessage},
		{"missing neighborhood", func(d *model.CreateRecipientDTO) { d.Neighborhood = "" }, model.ErrNeighborhoodRequiredMessage},
		{"missing address", func(d *model.CreateRecipientDTO) { d.Address = "" }, model.ErrAddressRequiredMessage},
		{"bad email", func(d *model.CreateRecipientDTO) { d.Email = "not-an-email" }, model.ErrInvalidEmailMessage},
		{"bad zipcode", func(d *model.CreateRecipientDTO) { d.Zipcode = "123" }, model.ErrInvalidZipcodeMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			apiErr := validateCreateRecipientDTO(input)

			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}
