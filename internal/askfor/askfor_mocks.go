package askfor

//go:generate moq -pkg mocks -out ./mocks/outbound_handle_mock.go . OutboundHandle
