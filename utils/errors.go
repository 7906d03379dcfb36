package utils

import (
	"errors"
	"net/http"
)

// Kind phân loại lỗi nghiệp vụ, ánh xạ 1-1 sang HTTP status
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotAuthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error là lỗi nghiệp vụ duy nhất mà services trả về.
// Controllers chỉ dựa vào Kind để chọn status, không parse message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewBadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// NewNotAuthorized luôn dùng chung một message,
// không để lộ nguyên nhân (sai user hay sai mật khẩu)
func NewNotAuthorized() *Error {
	return &Error{Kind: KindNotAuthorized, Message: "Not authorized"}
}

func NewForbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "Forbidden"}
}

func NewNotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewConflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NewInternal() *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong"}
}

// HTTPStatus trả về status tương ứng với Kind.
// Lỗi không phải *Error được coi là Internal.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotAuthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsKind kiểm tra err có phải lỗi nghiệp vụ thuộc loại k không
func IsKind(err error, k Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == k
}
