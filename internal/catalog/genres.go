package catalog

// defaultGenres lists the genre folders the organizer recognizes out of the
// box, including the combined labels the metadata provider emits as primary
// genres.
var defaultGenres = []string{
	"Action",
	"Adventure",
	"Animation",
	"Biography",
	"Comedy",
	"Crime",
	"Documentary",
	"Drama",
	"Family",
	"Fantasy",
	"Film-Noir",
	"Game-Show",
	"History",
	"Horror",
	"Music",
	"Musical",
	"Mystery",
	"News",
	"Reality-TV",
	"Romance",
	"Sci-Fi",
	"Sport",
	"Talk-Show",
	"Thriller",
	"War",
	"Western",

	// Combined genres
	"Action-Comedy",
	"Action-Horror",
	"Action-Adventure",
	"Adventure-Comedy",
	"Adventure-Fantasy",
	"Animation-Action",
	"Animation-Comedy",
	"Animation-Drama",
	"Animation-Family",
	"Biography-Drama",
	"Biography-History",
	"Comedy-Drama",
	"Comedy-Romance",
	"Crime-Drama",
	"Crime-Thriller",
	"Documentary-Biography",
	"Documentary-Drama",
	"Documentary-Music",
	"Drama-Family",
	"Drama-Mystery",
	"Drama-Romance",
	"Fantasy-Adventure",
	"Fantasy-Action",
	"Fantasy-Drama",
	"Fantasy-Romance",
	"Film-Noir-Crime",
	"Film-Noir-Drama",
	"Game-Show-Music",
	"History-Drama",
	"History-Romance",
	"Horror-Comedy",
	"Horror-Mystery",
	"Horror-Thriller",
	"Music-Drama",
	"Music-Romance",
	"Musical-Comedy",
	"Musical-Drama",
	"Mystery-Drama",
	"Mystery-Romance",
	"News-Talk-Show",
	"Reality-TV-Game-Show",
	"Romance-Comedy",
	"Romance-Drama",
	"Sci-Fi-Action",
	"Sci-Fi-Adventure",
	"Sci-Fi-Drama",
	"Sci-Fi-Thriller",
	"Sport-Drama",
	"Sport-Documentary",
	"Talk-Show-Comedy",
	"Talk-Show-Drama",
	"Thriller-Action",
	"Thriller-Crime",
	"Thriller-Drama",
	"War-Drama",
	"War-History",
	"Western-Action",
	"Western-Drama",
	"Western-Romance",

	// Additional genres
	"Anime",
	"Biopic",
	"Docudrama",
	"Experimental",
	"Historical",
	"Neo-Noir",
	"Superhero",
	"Survival",
	"Urban",
	"Zombie",
}
