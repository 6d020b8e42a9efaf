package database

import "testing"

// The seed fixtures must stay internally consistent: a crash-safe
// seeding transaction is worthless if the fixtures themselves could
// produce room types without rooms or rooms pointing at missing types.
func TestSeedRoomsReferenceSeededTypes(t *testing.T) {
	if len(seedRoomTypes) == 0 || len(seedRooms) == 0 {
		t.Fatal("seed fixtures must not be empty")
	}
	perType := make(map[uint64]int)
	for _, r := range seedRooms {
		if r.typeID < 1 || r.typeID > uint64(len(seedRoomTypes)) {
			t.Errorf("room %s references type %d outside the seeded range 1..%d",
				r.number, r.typeID, len(seedRoomTypes))
		}
		perType[r.typeID]++
	}
	for i := range seedRoomTypes {
		if perType[uint64(i+1)] == 0 {
			t.Errorf("seeded type %q has no rooms, bookings for it would always fail",
				seedRoomTypes[i].name)
		}
	}
}

func TestSeedRoomNumbersUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range seedRooms {
		if seen[r.number] {
			t.Errorf("duplicate seeded room number %s", r.number)
		}
		seen[r.number] = true
	}
}

func TestSeedAdminsIncludeOwner(t *testing.T) {
	// The OWNER_EMAIL default points at owner@hotel.com; the seed must
	// create that account or the protected owner would not exist.
	found := false
	for _, a := range seedAdminAccounts {
		if a.email == "owner@hotel.com" {
			found = true
		}
		if a.email == "" || a.password == "" {
			t.Errorf("seeded admin %s %s has empty credentials", a.first, a.last)
		}
	}
	if !found {
		t.Error("owner@hotel.com missing from seeded admin accounts")
	}
}
