package bootstrap

import "github.com/moonglae/pc-configurator/internal/catalog"

// seedCatalog loads the dev catalog into an in-memory repo. It mirrors the
// seed migration so both code paths recommend the same builds.
func seedCatalog(repo *catalog.MemoryRepo) {
	seed := []catalog.Component{
		{Name: "AMD Ryzen 5 5600", Category: catalog.CategoryCPU, Price: 129, Specs: catalog.Specs{"socket": "AM4", "cores": 6, "threads": 12, "score": 28}},
		{Name: "AMD Ryzen 5 7600", Category: catalog.CategoryCPU, Price: 219, Specs: catalog.Specs{"socket": "AM5", "cores": 6, "threads": 12, "score": 38}},
		{Name: "AMD Ryzen 7 7800X3D", Category: catalog.CategoryCPU, Price: 399, Specs: catalog.Specs{"socket": "AM5", "cores": 8, "threads": 16, "score": 52}},
		{Name: "Intel Core i5-13400F", Category: catalog.CategoryCPU, Price: 199, Specs: catalog.Specs{"socket": "LGA1700", "cores": 10, "threads": 16, "score": 36}},
		{Name: "Intel Core i7-13700K", Category: catalog.CategoryCPU, Price: 379, Specs: catalog.Specs{"socket": "LGA1700", "cores": 16, "threads": 24, "score": 55}},
		{Name: "MSI B550 Tomahawk", Category: catalog.CategoryMotherboard, Price: 139, Specs: catalog.Specs{"socket": "AM4", "memory_type": "DDR4", "form_factor": "ATX"}},
		{Name: "Gigabyte B650 Aorus Elite", Category: catalog.CategoryMotherboard, Price: 199, Specs: catalog.Specs{"socket": "AM5", "memory_type": "DDR5", "form_factor": "ATX"}},
		{Name: "ASUS Prime B760-Plus D4", Category: catalog.CategoryMotherboard, Price: 149, Specs: catalog.Specs{"socket": "LGA1700", "memory_type": "DDR4", "form_factor": "ATX"}},
		{Name: "ASUS ROG Strix Z790-E", Category: catalog.CategoryMotherboard, Price: 379, Specs: catalog.Specs{"socket": "LGA1700", "memory_type": "DDR5", "form_factor": "ATX"}},
		{Name: "Kingston Fury Beast 16GB DDR4-3200", Category: catalog.CategoryRAM, Price: 45, Specs: catalog.Specs{"type": "DDR4", "capacity_gb": 16, "speed_mhz": 3200}},
		{Name: "Corsair Vengeance 32GB DDR5-6000", Category: catalog.CategoryRAM, Price: 109, Specs: catalog.Specs{"type": "DDR5", "capacity_gb": 32, "speed_mhz": 6000}},
		{Name: "G.Skill Trident Z5 32GB DDR5-6400", Category: catalog.CategoryRAM, Price: 139, Specs: catalog.Specs{"type": "DDR5", "capacity_gb": 32, "speed_mhz": 6400}},
		{Name: "NVIDIA GeForce RTX 4060", Category: catalog.CategoryGPU, Price: 299, Specs: catalog.Specs{"tdp": 130, "vram_gb": 8, "score": 34}},
		{Name: "NVIDIA GeForce RTX 4070", Category: catalog.CategoryGPU, Price: 549, Specs: catalog.Specs{"tdp": 200, "vram_gb": 12, "score": 52}},
		{Name: "AMD Radeon RX 7800 XT", Category: catalog.CategoryGPU, Price: 499, Specs: catalog.Specs{"tdp": 310, "vram_gb": 16, "score": 56}},
		{Name: "NVIDIA GeForce RTX 4080", Category: catalog.CategoryGPU, Price: 1099, Specs: catalog.Specs{"tdp": 320, "vram_gb": 16, "score": 78}},
		{Name: "NVIDIA GeForce RTX 4090", Category: catalog.CategoryGPU, Price: 1599, Specs: catalog.Specs{"tdp": 450, "vram_gb": 24, "score": 100}},
		{Name: "be quiet! System Power 550W", Category: catalog.CategoryPSU, Price: 59, Specs: catalog.Specs{"wattage": 550, "certification": "Bronze"}},
		{Name: "Corsair RM750 750W Gold", Category: catalog.CategoryPSU, Price: 109, Specs: catalog.Specs{"wattage": 750, "certification": "Gold"}},
		{Name: "Seasonic Focus GX-850 850W", Category: catalog.CategoryPSU, Price: 139, Specs: catalog.Specs{"wattage": 850, "certification": "Gold"}},
	}
	for _, c := range seed {
		repo.Put(c)
	}
}
