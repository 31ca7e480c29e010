// Package mocks holds GoMock doubles of the widget collaborators.
//
//go:generate mockgen -source=../api/client/client.go -destination=mock_shortener.go -package=mocks
//go:generate mockgen -source=../clipboard/clipboard.go -destination=mock_clipboard.go -package=mocks
//go:generate mockgen -source=../service/secretary/interface.go -destination=mock_secretary.go -package=mocks
//go:generate mockgen -source=../storage/interface.go -destination=mock_storage.go -package=mocks
package mocks
