package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SportsDataProvider --dir ../usecase --output usecase --outpkg usecasemock --filename sportsdata_provider_mock.go
