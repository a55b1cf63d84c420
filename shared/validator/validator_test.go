package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"garage/shared/validator"
)

type ValidTestStruct struct {
	Name     string `validate:"required"                 json:"name"`
	Email    string `validate:"required,email"           json:"email"`
	Price    int    `validate:"gte=0"                    json:"price"`
	Category string `validate:"oneof=admin customer"     json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Price:    25,
				Category: "customer",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Price:    25,
				Category: "customer",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Price:    25,
				Category: "customer",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Price:    25,
				Category: "invalid",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid json body",
			body:        `{"name":"John Doe","email":"john@example.com","price":25,"category":"customer"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"name":"","email":"john@example.com","price":25,"category":"customer"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data ValidTestStruct
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "not-an-email",
			tag:         "email",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

type uploadTestStruct struct {
	Image *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpeg,maxfilesize=5"`
}

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{
		Filename: "test-file",
		Header:   header,
		Size:     size,
	}
}

func TestFileValidations(t *testing.T) {
	tests := []struct {
		name        string
		file        *multipart.FileHeader
		expectError bool
	}{
		{
			name:        "allowed mimetype within size limit",
			file:        fileHeader("image/png", 1024),
			expectError: false,
		},
		{
			name:        "allowed jpeg mimetype",
			file:        fileHeader("image/jpeg", 1024),
			expectError: false,
		},
		{
			name:        "disallowed mimetype",
			file:        fileHeader("application/pdf", 1024),
			expectError: true,
		},
		{
			name:        "file exceeds size limit",
			file:        fileHeader("image/png", 6*1024*1024),
			expectError: true,
		},
		{
			name:        "missing file",
			file:        nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := uploadTestStruct{Image: tt.file}
			err := validator.ValidateStruct(&data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
