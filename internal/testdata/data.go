package testdata

// Lane 2 is left empty on purpose
const data = `{
	"Seed": 20240315,
	"Frequency": 1,
	"Notes": [
		{"id": 0, "lane": 0, "time": 1.0, "kind": "tap"},
		{"id": 1, "lane": 0, "time": 1.5, "kind": "tap"},
		{"id": 2, "lane": 1, "time": 2.0, "kind": "tap"},
		{"id": 3, "lane": 1, "time": 2.1, "kind": "tap"},
		{"id": 4, "lane": 3, "time": 3.0, "kind": "tap"},
		{"id": 5, "lane": 0, "time": 4.0, "kind": "tap"}
	]
}`
