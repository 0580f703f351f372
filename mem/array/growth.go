package array

// Increment is the number of elements added per growth step.
const Increment = 5

// NextCapacity returns the capacity needed to hold index, starting from
// capacity and advancing in whole increments. It returns capacity unchanged
// when index already fits.
func NextCapacity(capacity, index int) int {
	if index < capacity {
		return capacity
	}
	steps := (index - capacity + Increment) / Increment
	return capacity + steps*Increment
}

// initialCapacity is the size of a freshly created array: the caller's
// requested capacity, or enough to hold index if that is larger.
func initialCapacity(capacity, index int) int {
	return max(capacity, index+1)
}
