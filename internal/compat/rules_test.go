package compat

import (
	"strings"
	"testing"

	"github.com/moonglae/pc-configurator/internal/catalog"
)

func cpu(name, socket string) catalog.Component {
	return catalog.Component{Name: name, Category: catalog.CategoryCPU, Specs: catalog.Specs{"socket": socket}}
}

func board(name, socket, memType string) catalog.Component {
	specs := catalog.Specs{"socket": socket}
	if memType != "" {
		specs["memory_type"] = memType
	}
	return catalog.Component{Name: name, Category: catalog.CategoryMotherboard, Specs: specs}
}

func ram(name, memType string) catalog.Component {
	specs := catalog.Specs{}
	if memType != "" {
		specs["type"] = memType
	}
	return catalog.Component{Name: name, Category: catalog.CategoryRAM, Specs: specs}
}

func gpu(name string, tdp float64) catalog.Component {
	specs := catalog.Specs{}
	if tdp > 0 {
		specs["tdp"] = tdp
	}
	return catalog.Component{Name: name, Category: catalog.CategoryGPU, Specs: specs}
}

func psu(name string, wattage float64) catalog.Component {
	specs := catalog.Specs{}
	if wattage > 0 {
		specs["wattage"] = wattage
	}
	return catalog.Component{Name: name, Category: catalog.CategoryPSU, Specs: specs}
}

func withSlot(category catalog.Category, c catalog.Component) Build {
	b := NewBuild()
	b[category] = &c
	return b
}

func TestSocketMismatchBothDirections(t *testing.T) {
	am5CPU := cpu("Ryzen 5 7600", "AM5")
	lgaBoard := board("ASUS Z790", "LGA1700", "DDR5")

	if reason := Check(catalog.CategoryCPU, am5CPU, withSlot(catalog.CategoryMotherboard, lgaBoard)); reason == "" {
		t.Fatalf("expected socket mismatch adding CPU to board")
	}
	if reason := Check(catalog.CategoryMotherboard, lgaBoard, withSlot(catalog.CategoryCPU, am5CPU)); reason == "" {
		t.Fatalf("expected socket mismatch adding board to CPU")
	}
}

func TestSocketMatchAllowed(t *testing.T) {
	am5CPU := cpu("Ryzen 5 7600", "AM5")
	am5Board := board("Gigabyte B650", "AM5", "DDR5")
	if reason := Check(catalog.CategoryCPU, am5CPU, withSlot(catalog.CategoryMotherboard, am5Board)); reason != "" {
		t.Fatalf("expected match, got %q", reason)
	}
}

func TestSocketUnknownNeverBlocks(t *testing.T) {
	unknownCPU := catalog.Component{Name: "Engineering Sample", Category: catalog.CategoryCPU}
	lgaBoard := board("ASUS Z790", "LGA1700", "DDR5")
	if reason := Check(catalog.CategoryCPU, unknownCPU, withSlot(catalog.CategoryMotherboard, lgaBoard)); reason != "" {
		t.Fatalf("expected missing socket to pass, got %q", reason)
	}
}

func TestMemoryGenerationMismatch(t *testing.T) {
	ddr5Board := board("Gigabyte B650", "AM5", "DDR5")
	ddr4RAM := ram("Kingston Fury DDR4-3200", "DDR4")

	reason := Check(catalog.CategoryRAM, ddr4RAM, withSlot(catalog.CategoryMotherboard, ddr5Board))
	if reason == "" {
		t.Fatalf("expected DDR mismatch")
	}
	if !strings.Contains(reason, "DDR5") {
		t.Fatalf("expected reason to mention DDR5, got %q", reason)
	}
}

func TestAM5BoardRejectsDDR4EvenWithoutMemoryType(t *testing.T) {
	// Board spec omits memory_type entirely; the socket alone implies DDR5.
	am5Board := board("ASRock B650M", "AM5", "")
	ddr4RAM := ram("Crucial Ballistix DDR4", "DDR4")

	if reason := Check(catalog.CategoryRAM, ddr4RAM, withSlot(catalog.CategoryMotherboard, am5Board)); reason == "" {
		t.Fatalf("expected AM5 board to reject DDR4 RAM")
	}
}

func TestRAMAlwaysCompatibleWithPSU(t *testing.T) {
	weakPSU := psu("NoName 300W", 300)
	anyRAM := ram("Some DDR4 Stick", "DDR4")

	if reason := Check(catalog.CategoryRAM, anyRAM, withSlot(catalog.CategoryPSU, weakPSU)); reason != "" {
		t.Fatalf("expected RAM-PSU pair to pass, got %q", reason)
	}
}

func TestWattageRuleSymmetric(t *testing.T) {
	bigGPU := gpu("RTX 4080", 320)
	weakPSU := psu("NoName 550W", 550)

	if reason := Check(catalog.CategoryGPU, bigGPU, withSlot(catalog.CategoryPSU, weakPSU)); reason == "" {
		t.Fatalf("expected underpowered PSU to block GPU")
	}
	if reason := Check(catalog.CategoryPSU, weakPSU, withSlot(catalog.CategoryGPU, bigGPU)); reason == "" {
		t.Fatalf("expected GPU to block underpowered PSU")
	}
}

func TestWattageNameFallbacksAtThreshold(t *testing.T) {
	// No spec fields at all: TDP comes from the model table (4090 -> 450),
	// wattage from parsing "750W". 450 >= 300 demands exactly 750.
	bigGPU := gpu("NVIDIA GeForce RTX 4090", 0)
	namedPSU := psu("Corsair RM750 750W Gold", 0)

	if reason := Check(catalog.CategoryGPU, bigGPU, withSlot(catalog.CategoryPSU, namedPSU)); reason != "" {
		t.Fatalf("expected 750W PSU to carry a 4090, got %q", reason)
	}
}

func TestWattageMidTierRequires700(t *testing.T) {
	midGPU := gpu("Custom GPU", 260)

	if reason := Check(catalog.CategoryGPU, midGPU, withSlot(catalog.CategoryPSU, psu("PSU 650", 650))); reason == "" {
		t.Fatalf("expected 650W to fail a 260W GPU")
	}
	if reason := Check(catalog.CategoryGPU, midGPU, withSlot(catalog.CategoryPSU, psu("PSU 700", 700))); reason != "" {
		t.Fatalf("expected 700W to pass a 260W GPU, got %q", reason)
	}
}

func TestWattageLowTDPUnconstrained(t *testing.T) {
	smallGPU := gpu("RTX 4060", 130)
	tinyPSU := psu("NoName 350W", 350)

	if reason := Check(catalog.CategoryGPU, smallGPU, withSlot(catalog.CategoryPSU, tinyPSU)); reason != "" {
		t.Fatalf("expected low-TDP GPU to pass any PSU, got %q", reason)
	}
}

func TestRequiredWattageBoundaries(t *testing.T) {
	cases := []struct {
		tdp  float64
		want float64
	}{
		{0, 0},
		{249, 0},
		{250, 700},
		{299, 700},
		{300, 750},
		{450, 750},
	}
	for _, tc := range cases {
		if got := requiredWattage(tc.tdp); got != tc.want {
			t.Fatalf("tdp %.0f: expected %.0f, got %.0f", tc.tdp, tc.want, got)
		}
	}
}

func TestExemptionRuleEndsEvaluationWithPass(t *testing.T) {
	ddr4RAM := ram("Some DDR4 Stick", "DDR4")

	reason, done := Rules[0].Check(catalog.CategoryRAM, ddr4RAM, withSlot(catalog.CategoryPSU, psu("NoName 300W", 300)))
	if !done || reason != "" {
		t.Fatalf("expected exemption to end evaluation with a pass, got (%q, %v)", reason, done)
	}

	reason, done = Rules[0].Check(catalog.CategoryRAM, ddr4RAM, NewBuild())
	if done {
		t.Fatalf("expected later rules to run without a PSU, got %q", reason)
	}
}

func TestRulePrecedenceSocketBeforeMemory(t *testing.T) {
	// A board that conflicts on both socket and memory reports the socket
	// reason only.
	am5Board := board("Gigabyte B650", "AM5", "DDR5")
	b := NewBuild()
	lga := cpu("i5-13400F", "LGA1700")
	ddr4 := ram("Kingston DDR4", "DDR4")
	b[catalog.CategoryCPU] = &lga
	b[catalog.CategoryRAM] = &ddr4

	reason := Check(catalog.CategoryMotherboard, am5Board, b)
	if reason == "" {
		t.Fatalf("expected conflict")
	}
	if !strings.Contains(reason, "socket") {
		t.Fatalf("expected socket reason first, got %q", reason)
	}
}
