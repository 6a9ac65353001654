package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FavoriteFolder is the list-friendly view of one folder, used by the frontend tree.
type FavoriteFolder struct {
	Name string   `json:"name"`
	URLs []string `json:"urls"`
}

// Favorites maps folder names to ordered URL lists. Folder order is the
// order in which folders were first created and survives a JSON round trip.
type Favorites struct {
	folders *orderedmap.OrderedMap[string, []string]
}

func NewFavorites() *Favorites {
	return &Favorites{folders: orderedmap.New[string, []string]()}
}

func (f *Favorites) Len() int {
	return f.folders.Len()
}

func (f *Favorites) Has(name string) bool {
	_, ok := f.folders.Get(name)
	return ok
}

// URLs returns a copy of the folder's URL list.
func (f *Favorites) URLs(name string) ([]string, bool) {
	urls, ok := f.folders.Get(name)
	if !ok {
		return nil, false
	}
	return append([]string{}, urls...), true
}

// Set replaces the folder's URL list, creating the folder at the end if absent.
func (f *Favorites) Set(name string, urls []string) {
	if urls == nil {
		urls = []string{}
	}
	f.folders.Set(name, urls)
}

func (f *Favorites) Delete(name string) bool {
	_, ok := f.folders.Delete(name)
	return ok
}

func (f *Favorites) Folders() []FavoriteFolder {
	out := make([]FavoriteFolder, 0, f.folders.Len())
	for pair := f.folders.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, FavoriteFolder{
			Name: pair.Key,
			URLs: append([]string{}, pair.Value...),
		})
	}
	return out
}

// Clone returns a deep copy.
func (f *Favorites) Clone() *Favorites {
	c := NewFavorites()
	for pair := f.folders.Oldest(); pair != nil; pair = pair.Next() {
		c.folders.Set(pair.Key, append([]string{}, pair.Value...))
	}
	return c
}

func (f *Favorites) MarshalJSON() ([]byte, error) {
	return f.folders.MarshalJSON()
}

func (f *Favorites) UnmarshalJSON(data []byte) error {
	folders := orderedmap.New[string, []string]()
	if err := folders.UnmarshalJSON(data); err != nil {
		return err
	}
	for pair := folders.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			pair.Value = []string{}
		}
	}
	f.folders = folders
	return nil
}
