package chinook

import (
	"database/sql"

	"github.com/diwise/chinook-rdf/pkg/rdf/types"
)

type Genre struct {
	GenreID sql.Null[int64]
	Name    sql.Null[string]
}

func MapGenre(row Genre, sink types.Sink) error {
	return emit(sink, GenreTypeName, row.GenreID,
		text(PredicateName, row.Name),
	)
}

type MediaType struct {
	MediaTypeID sql.Null[int64]
	Name        sql.Null[string]
}

func MapMediaType(row MediaType, sink types.Sink) error {
	return emit(sink, MediaTypeTypeName, row.MediaTypeID,
		text(PredicateName, row.Name),
	)
}

type Artist struct {
	ArtistID sql.Null[int64]
	Name     sql.Null[string]
}

func MapArtist(row Artist, sink types.Sink) error {
	return emit(sink, ArtistTypeName, row.ArtistID,
		text(PredicateName, row.Name),
	)
}

type Album struct {
	AlbumID  sql.Null[int64]
	Title    sql.Null[string]
	ArtistID sql.Null[int64]
}

// MapAlbum writes the album title with the same name predicate as the other
// catalog entries
func MapAlbum(row Album, sink types.Sink) error {
	return emit(sink, AlbumTypeName, row.AlbumID,
		text(PredicateName, row.Title),
		refersTo(PredicateHasArtist, ArtistTypeName, row.ArtistID),
	)
}

type Track struct {
	TrackID     sql.Null[int64]
	Name        sql.Null[string]
	AlbumID     sql.Null[int64]
	MediaTypeID sql.Null[int64]
	GenreID     sql.Null[int64]
}

func MapTrack(row Track, sink types.Sink) error {
	return emit(sink, TrackTypeName, row.TrackID,
		text(PredicateName, row.Name),
		refersTo(PredicateHasAlbum, AlbumTypeName, row.AlbumID),
		refersTo(PredicateHasGenre, GenreTypeName, row.GenreID),
		refersTo(PredicateHasMediaType, MediaTypeTypeName, row.MediaTypeID),
	)
}
