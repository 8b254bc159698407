package gpc

import (
	"fmt"
	"math"
)

const maxLatWhole = 89
const maxLngWhole = 179

const maxAssignedLat = 2*maxLatWhole + 1 // 179
const maxAssignedLng = 2*maxLngWhole + 1 // 359
const maxSum = maxAssignedLat + maxAssignedLng

// Number of combinations, one per signed whole degree pair.
const maxCombination = (maxAssignedLat + 1) * (maxAssignedLng + 1) // 64800

// signedWholePair is the sign and whole degree part of both axes.
type signedWholePair struct {
	latSign  int
	latWhole int
	lngSign  int
	lngWhole int
}

// assigned folds the sign into the whole degree value: even for positive
// values, odd for negative ones.
func assigned(sign, whole int) int {
	if sign == -1 {
		return 2*whole + 1
	}
	return 2 * whole
}

// unassigned is the inverse of assigned.
func unassigned(a int) (sign, whole int) {
	if a%2 != 0 {
		return -1, (a - 1) / 2
	}
	return 1, a / 2
}

// combinationRegion is one band of diagonals (assignedLat + assignedLng ==
// sum) of the assigned lat/lng rectangle. Diagonals grow by one cell up to
// sum 179, stay at 180 cells up to sum 359 and then shrink to one cell at
// sum 538.
type combinationRegion struct {
	minSum, maxSum int // diagonals covered
	first, last    int // combination numbers covered
	combine        func(sum, lat, lng int) int
	split          func(n int) (lat, lng int)
}

var combinationRegions = [3]combinationRegion{
	{0, 179, 1, 16290, combineGrowing, splitGrowing},
	{180, 359, 16291, 48690, combinePlateau, splitPlateau},
	{360, maxSum, 48691, maxCombination, combineShrinking, splitShrinking},
}

// triangle returns 1 + 2 + ... + k.
func triangle(k int) int {
	return k * (k + 1) / 2
}

func combineGrowing(sum, lat, lng int) int {
	return triangle(sum) + lng + 1
}

func splitGrowing(n int) (lat, lng int) {
	// find sum with triangle(sum) < n <= triangle(sum+1)
	sum := int(math.Sqrt(float64(2 * n)))
	for sum > 0 && triangle(sum) >= n {
		sum--
	}
	for triangle(sum+1) < n {
		sum++
	}
	lng = n - triangle(sum) - 1
	return sum - lng, lng
}

const plateauStart = 16290
const plateauWidth = maxAssignedLat + 1 // 180 cells per diagonal

func combinePlateau(sum, lat, lng int) int {
	return plateauStart + (sum-180)*plateauWidth + (plateauWidth - lat)
}

func splitPlateau(n int) (lat, lng int) {
	m := n - plateauStart
	// the last cell of a diagonal belongs to that diagonal, not the next
	band := (m - 1) / plateauWidth
	sum := 180 + band
	lat = plateauWidth - (m - band*plateauWidth)
	return lat, sum - lat
}

const shrinkStart = 48690

// shrinkOffset is the number of cells in the first k shrinking diagonals:
// 179 + 178 + ... + (179-k+1).
func shrinkOffset(k int) int {
	return k*maxAssignedLat - k*(k-1)/2
}

func combineShrinking(sum, lat, lng int) int {
	return shrinkStart + shrinkOffset(sum-360) + (plateauWidth - lat)
}

func splitShrinking(n int) (lat, lng int) {
	m := n - shrinkStart
	k := 0
	for shrinkOffset(k+1) < m {
		k++
	}
	sum := 360 + k
	lat = plateauWidth - (m - shrinkOffset(k))
	return lat, sum - lat
}

// combine maps a signed whole pair onto [1, 64800]. It panics if the pair is
// outside the valid coordinate range.
func combine(p signedWholePair) int {
	if p.latWhole < 0 || p.latWhole > maxLatWhole ||
		p.lngWhole < 0 || p.lngWhole > maxLngWhole ||
		(p.latSign != 1 && p.latSign != -1) ||
		(p.lngSign != 1 && p.lngSign != -1) {
		panic(fmt.Sprintf("gpc: signed whole pair out of range: %+v", p))
	}
	lat := assigned(p.latSign, p.latWhole)
	lng := assigned(p.lngSign, p.lngWhole)
	sum := lat + lng
	for _, r := range combinationRegions {
		if sum <= r.maxSum {
			return r.combine(sum, lat, lng)
		}
	}
	panic("gpc: unreachable")
}

// split is the inverse of combine.
func split(n int) (signedWholePair, error) {
	for _, r := range combinationRegions {
		if n >= r.first && n <= r.last {
			lat, lng := r.split(n)
			var p signedWholePair
			p.latSign, p.latWhole = unassigned(lat)
			p.lngSign, p.lngWhole = unassigned(lng)
			return p, nil
		}
	}
	return signedWholePair{}, fmt.Errorf("%w: combination %d", ErrInvalidCodeValue, n)
}
