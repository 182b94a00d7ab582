package utils

import "strconv"

func ToInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func StrPtr(s string) *string {
	return &s
}

func Int64Ptr(n int64) *int64 {
	return &n
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
