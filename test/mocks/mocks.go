// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/cart_store.go -destination=cart_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/catalog_repository.go -destination=catalog_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/stock_repository.go -destination=stock_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/workflow_repository.go -destination=workflow_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/database.go -destination=database_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/storage.go -destination=storage_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/sale_service.go -destination=sale_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/stock_service.go -destination=stock_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/workflow_service.go -destination=workflow_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/report_service.go -destination=report_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/catalog_service.go -destination=catalog_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/label_service.go -destination=label_service_mock.go -package=mocks
