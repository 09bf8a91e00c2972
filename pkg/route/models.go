package route

// Request is the JSON body sent to the route service.
type Request struct {
	Destination string `json:"bitis_duragi"`
}

// Response is the JSON body returned by the route service.
// Output is a pointer so a missing field can be told apart from an empty list.
type Response struct {
	Output *[]string `json:"output"`
}

// Result holds the route descriptions in the order the service returned them
type Result struct {
	Routes []string `json:"routes"`
}
