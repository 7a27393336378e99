package points

import "math"

// TransportMode identifies how a trip was made.
type TransportMode string

const (
	ModeWalking     TransportMode = "walking"
	ModeBicycle     TransportMode = "bicycle"
	ModeScooter     TransportMode = "scooter"
	ModeBus         TransportMode = "bus"
	ModeTrain       TransportMode = "train"
	ModeSubway      TransportMode = "subway"
	ModeTram        TransportMode = "tram"
	ModeElectricCar TransportMode = "electric_car"
	ModeCarpool     TransportMode = "carpool"
	ModeCar         TransportMode = "car"
	ModeTaxi        TransportMode = "taxi"
	ModeMotorcycle  TransportMode = "motorcycle"

	// Emergency vehicles earn nothing; the trips are essential either way.
	ModeAmbulance  TransportMode = "ambulance"
	ModePoliceCar  TransportMode = "police_car"
	ModeFireEngine TransportMode = "fire_engine"
)

var pointsPerKM = map[TransportMode]int{
	ModeWalking:     5,
	ModeBicycle:     5,
	ModeScooter:     4,
	ModeBus:         2,
	ModeTrain:       2,
	ModeSubway:      2,
	ModeTram:        2,
	ModeElectricCar: 2,
	ModeCarpool:     1,
	ModeCar:         0,
	ModeTaxi:        0,
	ModeMotorcycle:  0,
	ModeAmbulance:   0,
	ModePoliceCar:   0,
	ModeFireEngine:  0,
}

// ValidMode reports whether the mode is one the platform tracks.
func ValidMode(mode TransportMode) bool {
	_, ok := pointsPerKM[mode]
	return ok
}

// ForTrip computes the eco points earned for a trip. Active transport
// (walking, bicycle, scooter) over 3km gets 2 bonus points for every full
// 3km. The result is never negative.
func ForTrip(mode TransportMode, distanceKM float64) int {
	if distanceKM <= 0 {
		return 0
	}

	base := int(math.Round(distanceKM * float64(pointsPerKM[mode])))

	bonus := 0
	if (mode == ModeWalking || mode == ModeBicycle || mode == ModeScooter) && distanceKM > 3 {
		bonus = int(distanceKM/3) * 2
	}

	return base + bonus
}
