package ledger

import "errors"

// Validation errors surfaced to the operator. The texts are shown
// verbatim in the UI status line.
var (
	ErrNameRequired       = errors.New("고객명을 입력해주세요")
	ErrDriverNameRequired = errors.New("기사명을 입력해주세요")
	ErrNoCustomer         = errors.New("고객을 선택해주세요")
	ErrNoDriver           = errors.New("기사를 선택해주세요")
	ErrNoPlayTime         = errors.New("플레이 시간을 입력해주세요")
	ErrCustomerGone       = errors.New("고객 정보를 찾을 수 없습니다")
)

// ErrNotFound reports an operation against an id that no longer
// exists.
var ErrNotFound = errors.New("not found")
