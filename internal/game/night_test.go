package game

import (
	"reflect"
	"testing"

	"wolfjudge/internal/models"
)

func TestResolveNightDeaths(t *testing.T) {
	tests := []struct {
		name  string
		night models.NightState
		want  []int
	}{
		{
			name:  "unprotected kill dies",
			night: models.NightState{WolfKillTarget: 5},
			want:  []int{5},
		},
		{
			name:  "guarded kill survives",
			night: models.NightState{WolfKillTarget: 5, GuardTarget: 5},
			want:  nil,
		},
		{
			name:  "saved kill survives",
			night: models.NightState{WolfKillTarget: 5, AntidoteTarget: 5},
			want:  nil,
		},
		{
			name:  "guarded and saved dies",
			night: models.NightState{WolfKillTarget: 5, GuardTarget: 5, AntidoteTarget: 5},
			want:  []int{5},
		},
		{
			name:  "guard elsewhere does not protect",
			night: models.NightState{WolfKillTarget: 5, GuardTarget: 3},
			want:  []int{5},
		},
		{
			name:  "poison dies regardless of guard",
			night: models.NightState{PoisonTarget: 7, GuardTarget: 7},
			want:  []int{7},
		},
		{
			name:  "kill and poison on different seats",
			night: models.NightState{WolfKillTarget: 5, PoisonTarget: 7},
			want:  []int{5, 7},
		},
		{
			name:  "kill and poison on the same seat deduplicated",
			night: models.NightState{WolfKillTarget: 5, PoisonTarget: 5},
			want:  []int{5},
		},
		{
			name:  "saved kill still dies to poison",
			night: models.NightState{WolfKillTarget: 5, AntidoteTarget: 5, PoisonTarget: 5},
			want:  []int{5},
		},
		{
			name:  "quiet night",
			night: models.NightState{},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveNightDeaths(tt.night)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("deaths = %v, want %v", got, tt.want)
			}
		})
	}
}
