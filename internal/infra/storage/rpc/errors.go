package rpc

import "errors"

var (
	// ErrUnexpectedRPCShape возвращается, когда ответ процедуры не совпадает с {"success","message","data"}
	ErrUnexpectedRPCShape = errors.New("rpc: unexpected response shape")

	// ErrRPCFailed возвращается, когда процедура вернула success=false
	ErrRPCFailed = errors.New("rpc: procedure reported failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rpc: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rpc: failed to execute query")
)
