package main

import (
	"net/http"
	"strconv"
)

func handleGetRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	options := []GameRecordsOption{}
	if query.Has("username") {
		options = append(options, GameRecordsForPlayer(query.Get("username")))
	}
	if query.Has("size") {
		size, err := strconv.Atoi(query.Get("size"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		options = append(options, GameRecordsForSize(size))
	}
	records, err := getGameRecords(r.Context(), options...)
	if err != nil {
		log.Error(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if _, err := sendJSON(w, records); err != nil {
		log.Error(err)
	}
}

func handleGetOwnRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	records, err := getGameRecords(
		r.Context(), GameRecordsForPlayer(claims.Username),
	)
	if err != nil {
		log.Error(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if _, err := sendJSON(w, records); err != nil {
		log.Error(err)
	}
}
