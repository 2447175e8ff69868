package midifile

// interval is one sounding note span in beats, [Start, End).
type interval struct {
	start float64
	end   float64
}

// Extract — melody and rhythm grid extraction
//
// Description:
//
//	Selects one track of f (opts.Track, or the one with the most note-on
//	events under AutoTrack), then produces:
//	 1. Melody: the note numbers in onset order.
//	 2. Rhythm: a binary grid at opts.TimeUnit beats per step, where a
//	    step is 1 iff any note sounds during it. Each sounding interval
//	    [start, end) marks every step it touches; a zero-length note
//	    still marks its onset step. Notes left open at end of track are
//	    closed there.
//
// Errors: ErrBadTimeUnit, ErrTrackIndex.
//
// Complexity: O(events + grid length).
func Extract(f *File, opts ExtractOptions) (Piece, error) {
	if opts.TimeUnit <= 0 {
		return Piece{}, ErrBadTimeUnit
	}
	idx := opts.Track
	if idx == AutoTrack {
		idx = mostActiveTrack(f)
	}
	if idx < 0 || idx >= len(f.Tracks) {
		return Piece{}, ErrTrackIndex
	}

	melody, intervals := collectIntervals(f.Tracks[idx], f.TicksPerBeat)

	var totalBeats float64
	for _, iv := range intervals {
		if iv.end > totalBeats {
			totalBeats = iv.end
		}
	}
	return Piece{
		Melody: melody,
		Rhythm: intervalsToGrid(intervals, totalBeats, opts.TimeUnit),
	}, nil
}

// mostActiveTrack returns the index of the track with the most sounding
// onsets; ties and an all-silent file resolve to the earliest track.
func mostActiveTrack(f *File) int {
	best, bestCount := 0, -1
	for i, tr := range f.Tracks {
		count := 0
		for _, ev := range tr.Events {
			if ev.On {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = i, count
		}
	}
	return best
}

// collectIntervals pairs note-ons with their note-offs, converting ticks
// to beats. A second onset of an already-sounding note restarts it.
func collectIntervals(tr Track, ticksPerBeat uint16) ([]int, []interval) {
	var (
		melody    []int
		intervals []interval
	)
	div := float64(ticksPerBeat)
	active := make(map[byte]float64)
	for _, ev := range tr.Events {
		at := float64(ev.Tick) / div
		if ev.On {
			melody = append(melody, int(ev.Note))
			active[ev.Note] = at
			continue
		}
		if start, ok := active[ev.Note]; ok {
			delete(active, ev.Note)
			intervals = append(intervals, interval{start: start, end: at})
		}
	}
	endBeat := float64(tr.EndTick) / div
	for _, start := range active {
		intervals = append(intervals, interval{start: start, end: endBeat})
	}
	return melody, intervals
}

// intervalsToGrid rasterizes sounding intervals onto a binary beat grid.
// The grid spans floor(totalBeats/timeUnit)+1 steps, at least one.
func intervalsToGrid(intervals []interval, totalBeats, timeUnit float64) []int {
	steps := int(totalBeats/timeUnit) + 1
	if steps < 1 {
		steps = 1
	}
	grid := make([]int, steps)
	for _, iv := range intervals {
		startIdx := int(iv.start / timeUnit)
		if startIdx < 0 {
			startIdx = 0
		}
		// 0.9999 pulls interval ends just short of a step boundary back
		// into that step, mirroring a ceiling with tolerance.
		endIdx := int(iv.end/timeUnit + 0.9999)
		if endIdx < startIdx+1 {
			endIdx = startIdx + 1
		}
		for j := startIdx; j < endIdx && j < steps; j++ {
			grid[j] = 1
		}
	}
	return grid
}
