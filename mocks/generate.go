package mocks

//go:generate mockgen -destination=./mock_provider.go -package=mocks github.com/twquant/warroom/pkg/marketdata/provider Provider
