// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// CPF validation service, its handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "erro" field of HTTP responses. The wording is Portuguese and is part of the
// public contract of the API; existing clients match on it.
package app

const (
	// MsgCPFWrongLength is returned when the input does not reduce to
	// exactly 11 digits after stripping punctuation.
	MsgCPFWrongLength = "CPF deve conter 11 dígitos"

	// MsgCPFRepeatedDigits is returned for sequences such as "11111111111".
	MsgCPFRepeatedDigits = "CPF não pode ter todos os dígitos iguais"

	// MsgCPFFirstCheckDigit is returned when the 10th digit is wrong.
	MsgCPFFirstCheckDigit = "Primeiro dígito verificador inválido"

	// MsgCPFSecondCheckDigit is returned when the 11th digit is wrong.
	MsgCPFSecondCheckDigit = "Segundo dígito verificador inválido"

	// MsgCPFInvalidInput is returned when the "cpf" value is not a string.
	MsgCPFInvalidInput = "CPF deve ser uma string"

	// MsgCPFMissingInBody is returned by POST /validar-cpf when the body has
	// no "cpf" field or the field is empty.
	MsgCPFMissingInBody = "CPF não fornecido no corpo da requisição"

	// MsgCPFMissingInQuery is returned by GET /validar-cpf-get when the
	// "cpf" query parameter is absent or empty.
	MsgCPFMissingInQuery = "Parâmetro CPF não fornecido. Use ?cpf=12345678901"

	// MsgInvalidRequestBody is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidRequestBody = "Corpo da requisição inválido"

	// MsgTooManyRequests is returned when a client exceeds its rate limit.
	MsgTooManyRequests = "Muitas requisições. Tente novamente em instantes"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Erro interno do servidor"
)
