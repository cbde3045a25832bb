package vr

//go:generate mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
