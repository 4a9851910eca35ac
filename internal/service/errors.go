package service

import "fmt"

type ErrorKind string

const (
	UpstreamStatus       ErrorKind = "upstream_status"
	UnrecognizedResponse ErrorKind = "unrecognized_response"
	NetworkFailure       ErrorKind = "network_failure"
)

// ProviderError is returned for every failed provider call.
type ProviderError struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case UpstreamStatus:
		return fmt.Sprintf("生成服务响应异常：%d %s", e.StatusCode, e.Body)
	case UnrecognizedResponse:
		return "生成服务未返回可识别的图片字段。"
	case NetworkFailure:
		return fmt.Sprintf("生成服务请求失败：%v", e.Err)
	default:
		return fmt.Sprintf("provider error (%s)", e.Kind)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
