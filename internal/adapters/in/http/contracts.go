package http

// Request and response bodies of the HTTP API. Caller identity travels in
// the X-Principal header, never in the body, so a client cannot act on
// another principal's behalf by forging a field.

// Error is the uniform error body. DomainCode carries the ledger's own
// error code (301, 302, 303, 400, 401, 402) when the failure is a domain
// rejection, zero otherwise.
type Error struct {
	Code       int    `json:"code"`
	DomainCode int    `json:"domainCode,omitempty"`
	Message    string `json:"message"`
}

// RegisterCarrierRequest is the body of POST /api/v1/carriers.
type RegisterCarrierRequest struct {
	Name        string `json:"name"`
	VehicleType string `json:"vehicleType"`
	MaxCapacity int    `json:"maxCapacity"`
	Location    string `json:"location"`
}

// SetAvailabilityRequest is the body of PUT /api/v1/carriers/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// UpdateLocationRequest is the body of PUT /api/v1/carriers/location.
type UpdateLocationRequest struct {
	Location string `json:"location"`
}

// Carrier is the read model returned by carrier lookups.
type Carrier struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	VehicleType  string `json:"vehicleType"`
	MaxCapacity  int    `json:"maxCapacity"`
	CurrentLoad  int    `json:"currentLoad"`
	Available    bool   `json:"available"`
	Location     string `json:"location"`
	Rating       int    `json:"rating"`
	RegisteredAt uint64 `json:"registeredAt"`
}

// AvailableCarrier is one entry of GET /api/v1/carriers/available.
type AvailableCarrier struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	VehicleType       string `json:"vehicleType"`
	Location          string `json:"location"`
	AvailableCapacity int    `json:"availableCapacity"`
	Rating            int    `json:"rating"`
}

// CarrierCapacity is the body returned by GET /api/v1/carriers/:id/capacity.
type CarrierCapacity struct {
	ID                string `json:"id"`
	AvailableCapacity int    `json:"availableCapacity"`
}

// AddRouteRequest is the body of POST /api/v1/routes.
type AddRouteRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	EstimatedTime int    `json:"estimatedTime"`
	CostPerUnit   int    `json:"costPerUnit"`
}

// Route is the read model returned by route lookups.
type Route struct {
	ID            uint64 `json:"id"`
	Carrier       string `json:"carrier"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	EstimatedTime int    `json:"estimatedTime"`
	CostPerUnit   int    `json:"costPerUnit"`
	Active        bool   `json:"active"`
}

// CreateScheduleRequest is the body of POST /api/v1/schedules.
type CreateScheduleRequest struct {
	Carrier   string   `json:"carrier"`
	Shipments []string `json:"shipments"`
	Priority  int      `json:"priority"`
}

// UpdatePriorityRequest is the body of PUT /api/v1/schedules/:id/priority.
type UpdatePriorityRequest struct {
	Priority int `json:"priority"`
}

// Schedule is the read model returned by schedule lookups.
type Schedule struct {
	ID             uint64   `json:"id"`
	Coordinator    string   `json:"coordinator"`
	Carrier        string   `json:"carrier"`
	Shipments      []string `json:"shipments"`
	OptimizedRoute []string `json:"optimizedRoute"`
	TotalDistance  int      `json:"totalDistance"`
	EstimatedTime  int      `json:"estimatedTime"`
	Priority       int      `json:"priority"`
	CreatedAt      uint64   `json:"createdAt"`
	Status         int      `json:"status"`
}

// SubmitOptimizationRequest is the body of POST /api/v1/optimizations.
type SubmitOptimizationRequest struct {
	ScheduleID     uint64   `json:"scheduleId"`
	OriginalRoute  []string `json:"originalRoute"`
	OptimizedRoute []string `json:"optimizedRoute"`
	DistanceSaved  int      `json:"distanceSaved"`
	TimeSaved      int      `json:"timeSaved"`
	Algorithm      string   `json:"algorithm"`
}

// Optimization is the read model returned by optimization lookups.
type Optimization struct {
	ID             uint64   `json:"id"`
	ScheduleID     uint64   `json:"scheduleId"`
	OriginalRoute  []string `json:"originalRoute"`
	OptimizedRoute []string `json:"optimizedRoute"`
	DistanceSaved  int      `json:"distanceSaved"`
	TimeSaved      int      `json:"timeSaved"`
	Algorithm      string   `json:"algorithm"`
	CreatedAt      uint64   `json:"createdAt"`
}

// EfficiencyResponse is the body returned by GET /api/v1/efficiency.
type EfficiencyResponse struct {
	OriginalDistance  int `json:"originalDistance"`
	OptimizedDistance int `json:"optimizedDistance"`
	Efficiency        int `json:"efficiency"`
}

// CreatedResponse returns the sequential ID allocated by a creation.
type CreatedResponse struct {
	ID uint64 `json:"id"`
}

// RegistryStats is the body returned by GET /api/v1/stats.
type RegistryStats struct {
	Carriers      int64 `json:"carriers"`
	Routes        int64 `json:"routes"`
	Schedules     int64 `json:"schedules"`
	Optimizations int64 `json:"optimizations"`
}
