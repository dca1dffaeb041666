package game

import (
	"reflect"
	"testing"

	"wolfjudge/internal/models"
	"wolfjudge/internal/roles"
)

func board(types ...models.RoleType) []*models.Player {
	players := make([]*models.Player, len(types))
	for i, rt := range types {
		players[i] = &models.Player{Seat: i + 1, Role: roles.Get(rt), Alive: true}
	}
	return players
}

func TestNightStepsFullBoard(t *testing.T) {
	players := board(
		models.RoleGuard, models.RoleWerewolf, models.RoleSeer,
		models.RoleWitch, models.RoleHunter, models.RoleVillager,
	)
	want := []models.Step{
		models.StepGuard, models.StepWerewolf, models.StepSeer,
		models.StepWitch, models.StepHunterStatus,
	}
	if got := NightSteps(players); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestNightStepsDropsDeadRoles(t *testing.T) {
	players := board(
		models.RoleGuard, models.RoleWerewolf, models.RoleSeer,
		models.RoleWitch, models.RoleHunter,
	)
	players[0].Alive = false // guard
	players[3].Alive = false // witch

	want := []models.Step{models.StepWerewolf, models.StepSeer, models.StepHunterStatus}
	if got := NightSteps(players); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestNightStepsWolfKingCountsAsWerewolf(t *testing.T) {
	players := board(models.RoleWolfKing, models.RoleVillager)
	want := []models.Step{models.StepWerewolf}
	if got := NightSteps(players); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestNightStepsFallback(t *testing.T) {
	players := board(models.RoleVillager, models.RoleVillager)
	want := []models.Step{models.StepWerewolf}
	if got := NightSteps(players); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestShouldRunPoliceElection(t *testing.T) {
	tests := []struct {
		name  string
		state models.GameState
		want  bool
	}{
		{
			name:  "first day without chief",
			state: models.GameState{Round: 1, Config: models.GameConfig{PlayerCount: 9}},
			want:  true,
		},
		{
			name: "chief already elected",
			state: models.GameState{
				Round:  1,
				Config: models.GameConfig{PlayerCount: 9},
				Day:    models.DayState{PoliceChief: 3},
			},
			want: false,
		},
		{
			name: "round two rerun on twelve seats after self destruct",
			state: models.GameState{
				Round:             2,
				Config:            models.GameConfig{PlayerCount: 12},
				SelfDestructCount: 1,
			},
			want: true,
		},
		{
			name: "round two on twelve seats without self destruct",
			state: models.GameState{
				Round:  2,
				Config: models.GameConfig{PlayerCount: 12},
			},
			want: false,
		},
		{
			name: "round two rerun on nine seats",
			state: models.GameState{
				Round:             2,
				Config:            models.GameConfig{PlayerCount: 9},
				SelfDestructCount: 1,
			},
			want: false,
		},
		{
			name: "round three never reruns",
			state: models.GameState{
				Round:             3,
				Config:            models.GameConfig{PlayerCount: 12},
				SelfDestructCount: 2,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldRunPoliceElection(&tt.state); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShootEligible(t *testing.T) {
	hunter := func(canShoot, hasShot bool) *models.Player {
		return &models.Player{Role: roles.Get(models.RoleHunter), CanShoot: canShoot, HasShot: hasShot}
	}

	if !ShootEligible(hunter(true, false), false) {
		t.Error("fresh hunter should be eligible")
	}
	if ShootEligible(hunter(true, false), true) {
		t.Error("poisoned hunter should not be eligible")
	}
	if ShootEligible(hunter(false, false), false) {
		t.Error("hunter without shoot rights should not be eligible")
	}
	if ShootEligible(hunter(true, true), false) {
		t.Error("hunter who already shot should not be eligible")
	}

	wolfKing := &models.Player{Role: roles.Get(models.RoleWolfKing)}
	if !ShootEligible(wolfKing, true) {
		t.Error("wolf king fires even when poisoned")
	}
	wolfKing.HasShot = true
	if ShootEligible(wolfKing, false) {
		t.Error("wolf king who already shot should not be eligible")
	}

	if ShootEligible(&models.Player{Role: roles.Get(models.RoleVillager)}, false) {
		t.Error("villager should never be eligible")
	}
	if ShootEligible(nil, false) {
		t.Error("nil player should never be eligible")
	}
}

func TestDayStepsWithElection(t *testing.T) {
	state := &models.GameState{Round: 1, Config: models.GameConfig{PlayerCount: 9}}
	want := []models.Step{
		models.StepPoliceCampaign, models.StepPoliceSpeech, models.StepPoliceWithdraw,
		models.StepPoliceVote, models.StepDawn,
		models.StepLastWords, models.StepDiscussion, models.StepVote, models.StepExecution,
	}
	if got := DaySteps(state); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestDayStepsPlainDawn(t *testing.T) {
	state := &models.GameState{
		Round:  2,
		Config: models.GameConfig{PlayerCount: 9},
		Day:    models.DayState{PoliceChief: 3},
	}
	want := []models.Step{
		models.StepDawn, models.StepLastWords, models.StepDiscussion,
		models.StepVote, models.StepExecution,
	}
	if got := DaySteps(state); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestDayStepsIncludesSkillForDyingHunter(t *testing.T) {
	state := &models.GameState{
		Round:   2,
		Config:  models.GameConfig{PlayerCount: 9},
		Players: board(models.RoleHunter, models.RoleWerewolf),
		Day:     models.DayState{PoliceChief: 2},
		Night:   models.NightState{WolfKillTarget: 1},
	}
	state.Players[0].CanShoot = true

	got := DaySteps(state)
	want := []models.Step{
		models.StepDawn, models.StepSkill, models.StepLastWords,
		models.StepDiscussion, models.StepVote, models.StepExecution,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestDayStepsNoSkillForPoisonedHunter(t *testing.T) {
	state := &models.GameState{
		Round:   2,
		Config:  models.GameConfig{PlayerCount: 9},
		Players: board(models.RoleHunter, models.RoleWerewolf),
		Day:     models.DayState{PoliceChief: 2},
		Night:   models.NightState{PoisonTarget: 1},
	}
	state.Players[0].CanShoot = true

	for _, step := range DaySteps(state) {
		if step == models.StepSkill {
			t.Fatal("poisoned hunter must not trigger a skill step")
		}
	}
}

func TestAllowsSelfDestruct(t *testing.T) {
	allowed := []models.Step{
		models.StepPoliceCampaign, models.StepPoliceSpeech,
		models.StepPoliceWithdraw, models.StepDiscussion,
	}
	for _, step := range allowed {
		if !AllowsSelfDestruct(step) {
			t.Errorf("step %s should allow self destruct", step)
		}
	}
	for _, step := range []models.Step{models.StepVote, models.StepDawn, models.StepPoliceVote} {
		if AllowsSelfDestruct(step) {
			t.Errorf("step %s should not allow self destruct", step)
		}
	}
}
