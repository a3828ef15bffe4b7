package query

type PageFilter struct {
	Page  int
	Limit int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// PageLimit returns the effective page size. Range clamping happens where
// the request is parsed; internal callers (such as the export path) may pass
// larger limits deliberately.
func (f PageFilter) PageLimit() int {
	if f.Limit <= 0 {
		return 20
	}
	return f.Limit
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return f.SortOrder == "desc" || f.SortOrder == "DESC"
}

func (f SortFilter) IsAscending() bool {
	return f.SortOrder == "asc" || f.SortOrder == "ASC"
}

type BaseFilter struct {
	PageFilter
	SortFilter
}
