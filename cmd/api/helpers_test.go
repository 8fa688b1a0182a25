package main

import "feedbackdesk/internal/params"

func paramsFirstPage() params.Pagination {
	return params.New(1, params.DefaultLimit)
}
