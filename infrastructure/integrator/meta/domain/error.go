package metadomain

// ErrorResponse representa o envelope de erro retornado pela API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes do erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
	ErrorData    any    `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro indica token expirado.
// O código 190 representa token expirado; os subcódigos 460, 463 e 467
// cobrem os demais problemas de token em erros OAuthException.
func (e *ErrorResponse) IsTokenExpired() bool {
	if e.Error.Code == 190 {
		return true
	}

	if e.Error.Type != "OAuthException" {
		return false
	}

	switch e.Error.ErrorSubcode {
	case 460, 463, 467:
		return true
	}

	return false
}
