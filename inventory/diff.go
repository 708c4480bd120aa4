package inventory

// roomsEquivalent reports whether two room trees are the same for the
// purposes of the unsaved-changes check: room count, room names,
// per-device counts, and sub-item names and checked flags. Device
// display metadata (status, ceilings) is deliberately not compared.
func roomsEquivalent(a []Room, b []Room) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}

		if len(a[i].Devices) != len(b[i].Devices) {
			return false
		}

		for j := range a[i].Devices {
			if !devicesEquivalent(a[i].Devices[j], b[i].Devices[j]) {
				return false
			}
		}
	}

	return true
}

func devicesEquivalent(a Device, b Device) bool {
	if a.Count != b.Count {
		return false
	}

	if len(a.SubItems) != len(b.SubItems) {
		return false
	}

	for i := range a.SubItems {
		if a.SubItems[i].Name != b.SubItems[i].Name {
			return false
		}

		if a.SubItems[i].Checked != b.SubItems[i].Checked {
			return false
		}
	}

	return true
}
