// Package studio owns the live icon configuration of an editing session.
//
// The core is a reducer: [Reducer.Reduce] takes the current [State] and an
// [Action] and returns the next State without touching its input. Every
// numeric edit is clamped into its domain on the way in, so a State never
// holds an out-of-range value.
//
// [Controller] wraps the reducer for front ends. It keeps the single live
// State, re-renders the SVG synchronously after every effective change and
// hands the result to an optional preview callback:
//
//	c := studio.New(studio.WithPreview(func(p studio.Preview) {
//	    fmt.Println(p.SVG)
//	}))
//	c.Dispatch(studio.ApplyPreset{ID: "modern"})
//	c.Dispatch(studio.SetText{Field: studio.MainText, Value: "Acme"})
//
// A Controller is not safe for concurrent use.
//
// # Active preset
//
// State.Active records the last applied preset. By default it sticks even
// after manual edits diverge from the preset; set
// [Policy.ClearActiveOnEdit] to drop it on the first manual visual edit.
package studio
