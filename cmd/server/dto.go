package main

import "github.com/gorilla/schema"

type SolveQuery struct {
	Part    int `schema:"part,required"`
	Fuel    int `schema:"fuel"`
	Workers int `schema:"workers"`
}

func decodeSolveQuery(src map[string][]string) (SolveQuery, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto SolveQuery
	err := dec.Decode(&dto, src)
	return dto, err
}
