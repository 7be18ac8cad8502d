package tarneeb

// TableState is the roster of seats
type TableState struct {
	seats [NumSeats]*Seat
}

// join seats the player in the lowest free seat
func (t *TableState) join(name string) (*Seat, error) {
	for i, seat := range t.seats {
		if seat == nil {
			t.seats[i] = newSeat(i, name)
			return t.seats[i], nil
		}
	}

	return nil, ErrTableFull
}

// leave frees the seat
func (t *TableState) leave(index int) (*Seat, error) {
	seat, err := t.seat(index)
	if err != nil {
		return nil, err
	}

	t.seats[index] = nil
	return seat, nil
}

func (t *TableState) seat(index int) (*Seat, error) {
	if index < 0 || index >= NumSeats || t.seats[index] == nil {
		return nil, newError(KindUnknownSeat, "seat %d is not taken", index)
	}

	return t.seats[index], nil
}

// Count returns the number of taken seats
func (t *TableState) Count() int {
	count := 0
	for _, seat := range t.seats {
		if seat != nil {
			count++
		}
	}

	return count
}

// Full returns true if a round can be played
func (t *TableState) Full() bool {
	return t.Count() == NumSeats
}

// occupied returns the taken seats in seat order
func (t *TableState) occupied() []*Seat {
	seats := make([]*Seat, 0, NumSeats)
	for _, seat := range t.seats {
		if seat != nil {
			seats = append(seats, seat)
		}
	}

	return seats
}

// States returns the public view of every taken seat
func (t *TableState) States() []SeatState {
	seats := t.occupied()
	states := make([]SeatState, len(seats))
	for i, seat := range seats {
		states[i] = seat.state()
	}

	return states
}

// emptyHands returns how many taken seats have no cards left
func (t *TableState) emptyHands() int {
	count := 0
	for _, seat := range t.occupied() {
		if len(seat.hand) == 0 {
			count++
		}
	}

	return count
}
