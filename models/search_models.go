package models

// DrugSearchRequest represents an incoming drug search request. The flag
// fields are pointers so that omitted fields can fall back to their
// documented defaults (dosage and side effects on, interactions off).
type DrugSearchRequest struct {
	DrugName            string `json:"drug_name"`
	IncludeDosage       *bool  `json:"include_dosage,omitempty"`
	IncludeSideEffects  *bool  `json:"include_side_effects,omitempty"`
	IncludeInteractions *bool  `json:"include_interactions,omitempty"`
}

// SearchOptions holds the resolved section flags for a search
type SearchOptions struct {
	IncludeDosage       bool `json:"include_dosage"`
	IncludeSideEffects  bool `json:"include_side_effects"`
	IncludeInteractions bool `json:"include_interactions"`
}

// DefaultSearchOptions returns the flag defaults used when a request omits them
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		IncludeDosage:       true,
		IncludeSideEffects:  true,
		IncludeInteractions: false,
	}
}

// Options resolves the request flags against the defaults
func (r DrugSearchRequest) Options() SearchOptions {
	opts := DefaultSearchOptions()
	if r.IncludeDosage != nil {
		opts.IncludeDosage = *r.IncludeDosage
	}
	if r.IncludeSideEffects != nil {
		opts.IncludeSideEffects = *r.IncludeSideEffects
	}
	if r.IncludeInteractions != nil {
		opts.IncludeInteractions = *r.IncludeInteractions
	}
	return opts
}

// DrugSearchData is the success payload of a drug search. The model's answer
// is carried verbatim in DrugInformation - no parsing or restructuring.
type DrugSearchData struct {
	DrugName        string        `json:"drug_name"`
	SearchQuery     string        `json:"search_query"`
	DrugInformation string        `json:"drug_information"`
	SearchOptions   SearchOptions `json:"search_options"`
	Timestamp       string        `json:"timestamp"`
}
