package game

import "wolfjudge/internal/models"

// ResolveNightDeaths computes the seats that die from the given night
// state. The wolf kill target dies iff guarded == saved: unprotected
// (neither) and same-guard-same-save (both) are deaths, exactly one
// protection is a survival. A poison target dies unconditionally. The
// result is deduplicated, kill target first.
//
// The function is pure and is re-invoked wherever the death set is
// needed (dawn, shoot eligibility, skill-step inclusion), so repeated
// calls within one night must agree.
func ResolveNightDeaths(night models.NightState) []int {
	var deaths []int

	if kill := night.WolfKillTarget; kill != 0 {
		guarded := night.GuardTarget == kill
		saved := night.AntidoteTarget == kill
		if guarded == saved {
			deaths = append(deaths, kill)
		}
	}

	if poison := night.PoisonTarget; poison != 0 {
		duplicate := false
		for _, seat := range deaths {
			if seat == poison {
				duplicate = true
				break
			}
		}
		if !duplicate {
			deaths = append(deaths, poison)
		}
	}

	return deaths
}
