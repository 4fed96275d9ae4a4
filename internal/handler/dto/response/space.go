package response

type DataEnvelope[T any] struct {
	Data T `json:"data"`
}

func Data[T any](v T) DataEnvelope[T] {
	return DataEnvelope[T]{Data: v}
}

type AvailabilityResponse struct {
	AvailableSlots []string `json:"available_slots"`
}
