// Package stations holds the canonical weather-station corpus the
// known-station fast path (spec.md §9) builds its perfect hash over. The
// list below is a representative subset of the reference 1BRC corpus, not
// a claim of completeness — any name outside it is an unknown key and,
// per spec.md §9, a fatal error under --known-stations.
package stations

// Canonical is the baked-in station name list for the --known-stations
// fast path.
var Canonical = []string{
	"Abha", "Abidjan", "Abéché", "Accra", "Addis Ababa", "Adelaide",
	"Aden", "Ahvaz", "Albuquerque", "Alexandra", "Algiers", "Alice Springs",
	"Almaty", "Amman", "Amsterdam", "Anadyr", "Anchorage", "Andorra la Vella",
	"Ankara", "Antananarivo", "Antsiranana", "Arkhangelsk", "Ashgabat",
	"Asmara", "Assab", "Astana", "Athens", "Atlanta", "Auckland", "Austin",
	"Baghdad", "Baguio", "Baku", "Baltimore", "Bamako", "Bangkok", "Bangui",
	"Banjul", "Barcelona", "Bata", "Batumi", "Beijing", "Beirut", "Belgrade",
	"Belize City", "Benghazi", "Bergen", "Berlin", "Bilbao", "Birao",
	"Bishkek", "Bissau", "Blantyre", "Bloemfontein", "Boise", "Bordeaux",
	"Bosaso", "Boston", "Bouaké", "Bratislava", "Brazzaville", "Bridgetown",
	"Brisbane", "Brussels", "Bucharest", "Budapest", "Bujumbura", "Bulawayo",
	"Burnie", "Busan", "Cabo San Lucas", "Cairns", "Cairo", "Calgary",
	"Canberra", "Cape Town", "Changsha", "Charlotte", "Chiang Mai", "Chicago",
	"Chihuahua", "Chișinău", "Chittagong", "Chongqing", "Christchurch",
	"City of San Marino", "Colombo", "Columbus", "Conakry", "Copenhagen",
	"Cotonou", "Cracow", "Da Lat", "Da Nang", "Dakar", "Dallas", "Damascus",
	"Dampier", "Dar es Salaam", "Darwin", "Denpasar", "Denver", "Detroit",
	"Dhaka", "Dikson", "Dili", "Djibouti", "Dodoma", "Dolisie", "Douala",
	"Dubai", "Dublin", "Dunedin", "Durban", "Dushanbe", "Edinburgh",
	"Edmonton", "El Paso", "Entebbe", "Erzurum", "Fairbanks", "Fianarantsoa",
	"Flores,  Petén", "Frankfurt", "Fresno", "Fukuoka", "Gabès", "Gaborone",
	"Gagnoa", "Gangtok", "Garissa", "Garoua", "George Town", "Ghanzi",
	"Gjoa Haven", "Guadalajara", "Guangzhou", "Guatemala City", "Halifax",
	"Hamburg", "Hamilton", "Hanga Roa", "Hanoi", "Harare", "Harbin",
	"Hargeisa", "Hat Yai", "Havana", "Helsinki", "Heraklion", "Hiroshima",
	"Ho Chi Minh City", "Hobart", "Hong Kong", "Honiara", "Honolulu",
	"Houston", "Ifrane", "Indianapolis", "Iqaluit", "Irkutsk", "Istanbul",
	"İzmir", "Jacksonville", "Jakarta", "Jayapura", "Jerusalem", "Johannesburg",
	"Jos", "Juba", "Kabul", "Kampala", "Kandi", "Kankan", "Kano", "Kansas City",
	"Karachi", "Karonga", "Kathmandu", "Khartoum", "Kingston", "Kinshasa",
	"Kolkata", "Kuala Lumpur", "Kumasi", "Kunming", "Kuopio", "Kuwait City",
	"Kyiv", "La Ceiba", "La Paz", "Lagos", "Lahore", "Lake Havasu City",
	"Lake Tekapo", "Las Palmas de Gran Canaria", "Las Vegas", "Launceston",
	"Lhasa", "Libreville", "Lisbon", "Livingstone", "Ljubljana", "Lodwar",
	"Lomé", "London", "Los Angeles", "Louisville", "Luanda", "Lubumbashi",
	"Lusaka", "Luxembourg City", "Macao", "Madrid", "Mahajanga", "Makassar",
	"Makurdi", "Malabo", "Malé", "Managua", "Manama", "Mandalay", "Mango",
	"Manila", "Maputo", "Marrakesh", "Marseille", "Maun", "Medan", "Mek'ele",
	"Melbourne", "Memphis", "Mexicali", "Mexico City", "Miami", "Milan",
	"Milwaukee", "Minneapolis", "Minsk", "Mogadishu", "Mombasa", "Monaco",
	"Moncton", "Monrovia", "Monterrey", "Montevideo", "Montreal", "Moscow",
	"Mumbai", "Murmansk", "Muscat", "Mzuzu", "N'Djamena", "Naha", "Nain",
	"Nairobi", "Nakhon Ratchasima", "Napier", "Napoli", "Nashville", "Nassau",
	"Ndola", "New Delhi", "New Orleans", "New York City", "Newcastle",
	"Niamey", "Nicosia", "Niigata", "Nouakchott", "Novosibirsk", "Nuuk",
	"Odesa", "Odienné", "Oklahoma City", "Omaha", "Oranjestad", "Oslo",
	"Ottawa", "Ouagadougou", "Ouahigouya", "Ouarzazate", "Oulu", "Palembang",
	"Palermo", "Palm Springs", "Palmerston North", "Panama City", "Parakou",
	"Paris", "Perth", "Petropavlovsk-Kamchatsky", "Philadelphia", "Phnom Penh",
	"Phoenix", "Pittsburgh", "Podgorica", "Pointe-Noire", "Pontianak",
	"Port Moresby", "Port Sudan", "Port Vila", "Port-Gentil", "Portland (OR)",
	"Porto", "Prague", "Praia", "Pretoria", "Pyongyang", "Quito", "Rabat",
	"Raleigh", "Rangpur", "Reggane", "Reykjavík", "Riga", "Riyadh", "Rome",
	"Roseau", "Rostov-on-Don", "Sacramento", "Saint Petersburg", "Saint-Pierre",
	"Salt Lake City", "San Antonio", "San Diego", "San Francisco", "San Jose",
	"San José", "San Salvador", "Sana'a", "Sandakan", "Sapporo", "Sarajevo",
	"Saskatoon", "Seattle", "Seoul", "Seville", "Shanghai", "Singapore",
	"Skopje", "Sochi", "Sofia", "Sokoto", "Split", "St. John's", "St. Louis",
	"Stockholm", "Surabaya", "Suva", "Suwałki", "Szeged", "Tabora", "Tabriz",
	"Taipei", "Tallinn", "Tamale", "Tamanrasset", "Tampa", "Tashkent",
	"Tauranga", "Tbilisi", "Tegucigalpa", "Tehran", "Tel Aviv", "Thessaloniki",
	"Thiès", "Tijuana", "Timbuktu", "Tirana", "Toamasina", "Tokyo", "Toliara",
	"Toluca", "Toronto", "Tripoli", "Tromsø", "Tucson", "Tunis", "Ulaanbaatar",
	"Upington", "Ürümqi", "Vaduz", "Valencia", "Valletta", "Vancouver",
	"Veracruz", "Vienna", "Vientiane", "Villahermosa", "Vilnius", "Virginia Beach",
	"Vladivostok", "Warsaw", "Washington, D.C.", "Wau", "Wellington",
	"Whitehorse", "Wichita", "Windhoek", "Winnipeg", "Wrocław", "Xi'an",
	"Yakutsk", "Yangon", "Yaoundé", "Yellowknife", "Yerevan", "Yinchuan",
	"Zagreb", "Zanzibar City", "Zürich",
}
