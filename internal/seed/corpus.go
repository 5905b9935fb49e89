package seed

import (
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
)

// Corpus extracted from the printed guide "Muro Lucano - Meraviglia tra
// cielo e terra". SourcePage refers to the page of the guide.

var monuments = []knowledgeModel.Monument{
	{
		NameIt:     "Canyon delle Ripe",
		NameEn:     "Ripe Canyon",
		NameEs:     "Cañón de las Ripe",
		Slug:       "canyon-delle-ripe",
		Category:   "nature",
		Tags:       []string{"nature", "canyon", "hiking", "biodiversity"},
		IsFeatured: true,
	},
	{
		NameIt:     "Castello",
		NameEn:     "Castle",
		NameEs:     "Castillo",
		Slug:       "castello",
		Category:   "monument",
		Tags:       []string{"history", "medieval", "architecture", "castle"},
		IsFeatured: true,
	},
	{
		NameIt:     "Cattedrale",
		NameEn:     "Cathedral",
		NameEs:     "Catedral",
		Slug:       "cattedrale",
		Category:   "religious",
		Tags:       []string{"religion", "church", "architecture", "art"},
		IsFeatured: true,
	},
	{
		NameIt:   "Museo Diocesano",
		NameEn:   "Diocesan Museum",
		NameEs:   "Museo Diocesano",
		Slug:     "museo-diocesano",
		Category: "museum",
		Tags:     []string{"museum", "art", "religion", "valadier"},
	},
	{
		NameIt:   "Scale d'Arte e Poesia",
		NameEn:   "Art and Poetry Stairs",
		NameEs:   "Escaleras de Arte y Poesía",
		Slug:     "scale-arte-poesia",
		Category: "art",
		Tags:     []string{"art", "poetry", "culture"},
	},
	{
		NameIt:     "Museo Archeologico Nazionale",
		NameEn:     "National Archaeological Museum",
		NameEs:     "Museo Arqueológico Nacional",
		Slug:       "museo-archeologico",
		Category:   "museum",
		Tags:       []string{"museum", "archaeology", "history", "ancient"},
		IsFeatured: true,
	},
	{
		NameIt:   "Sentiero delle Ripe",
		NameEn:   "Ripe Trail",
		NameEs:   "Sendero de las Ripe",
		Slug:     "sentiero-delle-ripe",
		Category: "nature",
		Tags:     []string{"nature", "hiking", "trail", "medieval"},
	},
	{
		NameIt:     "Borgo Pianello",
		NameEn:     "Pianello Village",
		NameEs:     "Pueblo Pianello",
		Slug:       "borgo-pianello",
		Category:   "village",
		Tags:       []string{"history", "medieval", "village", "architecture"},
		IsFeatured: true,
	},
	{
		NameIt:     "Casa di San Gerardo Maiella",
		NameEn:     "Saint Gerard Maiella House",
		NameEs:     "Casa de San Gerardo Maiella",
		Slug:       "casa-san-gerardo",
		Category:   "religious",
		Tags:       []string{"religion", "saint", "history", "museum"},
		IsFeatured: true,
	},
	{
		NameIt:   "Belvedere San Nicola",
		NameEn:   "San Nicola Belvedere",
		NameEs:   "Mirador San Nicola",
		Slug:     "belvedere-san-nicola",
		Category: "viewpoint",
		Tags:     []string{"viewpoint", "panorama", "architecture"},
	},
	{
		NameIt:   "Ponte del Pianello",
		NameEn:   "Pianello Bridge",
		NameEs:   "Puente del Pianello",
		Slug:     "ponte-pianello",
		Category: "monument",
		Tags:     []string{"architecture", "engineering", "bridge"},
	},
	{
		NameIt:   "Condotta Forzata Diga Nitti",
		NameEn:   "Nitti Dam Pressure Conduit",
		NameEs:   "Conducto Forzado Presa Nitti",
		Slug:     "condotta-forzata",
		Category: "monument",
		Tags:     []string{"engineering", "industrial", "history"},
	},
	{
		NameIt:     "Diga e Lago Artificiale Nitti",
		NameEn:     "Nitti Dam and Artificial Lake",
		NameEs:     "Presa y Lago Artificial Nitti",
		Slug:       "diga-nitti",
		Category:   "monument",
		Tags:       []string{"engineering", "industrial", "history", "nature"},
		IsFeatured: true,
	},
	{
		NameIt:     "Montagna del Bosco Grande",
		NameEn:     "Bosco Grande Mountain",
		NameEs:     "Montaña del Bosco Grande",
		Slug:       "bosco-grande",
		Category:   "nature",
		Tags:       []string{"nature", "mountain", "forest", "caves", "hiking"},
		IsFeatured: true,
	},
}

var passages = []knowledgeModel.Passage{
	{
		Title: "Canyon delle Ripe - Descrizione",
		Content: `Questo è il posto in cui il cielo bacia l'acqua e le ruba la voce. Le Ripe di Muro Lucano sono un irripetibile paradiso naturale sovrascritto dall'opera tutta umana che lo ha attraversato e conquistato. La statua di San Gerardo eretta a protezione e devozione, rivolge lo sguardo e spalanca le braccia verso il cuore urbanizzato della città che a lui guarda, devoto.

La stretta gola nata tra le pareti di rocce calcaree sedimentarie è il letto del fiume Rescio, interrotto a tratti da giganti di roccia caduti a seguito dell'erosione delle profonde e ripide pareti. Macigni e forme carsiche diventano anfratti, gole e piccole grotte ricche di stalattiti e stalagmiti dal fascino misterioso.`,
		ContentType: knowledgeModel.ContentDescription,
		Category:    "nature",
		Location:    "Canyon delle Ripe",
		Tags:        []string{"canyon", "nature", "geology", "fiume rescio"},
		SourcePage:  15,
	},
	{
		Title: "Canyon delle Ripe - Biodiversità",
		Content: `Il canyon è un esempio unico di come la natura impervia del luogo abbia stretto un patto di simbiosi con le comunità locali. Felci e licheni ricoprono le rocce ricche di bocche di leone, equiseto, campanule, e garofani selvatici.

Sono varie le specie animali che hanno scelto questo habitat dando vita a specifiche nicchie ecologiche. Il cielo delle Ripe è mappa per poiane, rondoni, nibbi imperiali, gheppi e falchi pellegrini. Oltre al corvo imperiale e alle cicogne nere che tra gli anfratti rocciosi hanno trovato rifugio sicuro.`,
		ContentType: knowledgeModel.ContentDescription,
		Category:    "nature",
		Location:    "Canyon delle Ripe",
		Tags:        []string{"biodiversity", "flora", "fauna", "cicogne nere"},
		SourcePage:  15,
	},
	{
		Title: "Canyon delle Ripe - Storia Industriale",
		Content: `Acqua e roccia sposano l'etica della forma. Un complesso sistema di canalizzazione del corso dell'acqua del fiume Rescio e la costruzione dei bellissimi mulini a ruota orizzontale di epoca normanna hanno anticipato la moderna concezione industriale di canalizzazione immaginata da Francesco Saverio Nitti già nei primi anni del 1900.

Il reticolo di gallerie scavate a mano nella roccia si estende per centinaia di metri e raggiunge la condotta forzata, con le caratteristiche giunture inchiodate a mano, il tubo piezometrico e l'arco parabolico di sostegno.`,
		ContentType: knowledgeModel.ContentHistory,
		Category:    "industrial",
		Location:    "Canyon delle Ripe",
		Tags:        []string{"industrial archaeology", "nitti", "water mills"},
		SourcePage:  15,
	},
	{
		Title: "Castello - Storia Medievale",
		Content: `Nella memoria del tempo l'ombra dell'imponente Castello medievale di Muro Lucano proietta linee e profili sulla roccia secoli prima della sua costruzione. Quello che era stato un piccolo forte di epoca longobarda diventerà nel XI secolo realtà chiara nei progetti di edificazione dei Normanni, giunti sulle colline murane durante la campagna di conquista dell'Italia meridionale.

A partire dal 1269 il castello sarà parte dei beni della Corona. Le vicende legate al castello non furono sempre bagnate dalla luce. Il castello e la torre furono parte del destino crudele della Regina Giovanna I d'Angiò che venne soffocata nel 1382 per ordine di Carlo di Durazzo.`,
		ContentType: knowledgeModel.ContentHistory,
		Category:    "monument",
		Location:    "Castello",
		Tags:        []string{"medieval", "normans", "queen giovanna"},
		SourcePage:  17,
	},
	{
		Title: "Castello - Epoca Orsina",
		Content: `Nel 1483 il Re di Napoli Ferrante d'Aragona fece del castello una contea del suo regno. Il conte napoletano Mazzeo Ferrillo giunse a Muro Lucano e ridisegnò le fattezze del castello realizzando il ponte levatoio e le due torri. I nuovi spazi accolsero il matrimonio tra sua nipote Beatrice e Ferdinando Orsini, duca di Gravina.

È questo l'inizio dell'età orsina che da Ferdinando attraverserà il tempo e si concluderà solo nel 1806, con l'abolizione dei diritti feudali. La famiglia Orsini intervenne più volte con opere di consolidamento e nuove modifiche all'originario progetto.`,
		ContentType: knowledgeModel.ContentHistory,
		Category:    "monument",
		Location:    "Castello",
		Tags:        []string{"renaissance", "orsini family", "nobility"},
		SourcePage:  17,
	},
	{
		Title: "Castello - Restauro Moderno",
		Content: `Il sisma del 1980 colpì ancora la struttura. Solo gli Anni Ottanta e gli Anni Novanta segnarono la ricostruzione: le murature, i locali delle scuderie, le stanze e gli ampi ambienti interni si ricomposero riconquistando il cielo e ritrovando il profilo medioevale del progetto originario.

Oggi il Castello è la corona lucente della città. E dalle arcate armoniche della torre costruita accanto all'ingresso affida al tempo i racconti di un popolo fiero e una corrispondenza di versi che Muro e ogni murese ricambiano con enfasi poetica.`,
		ContentType: knowledgeModel.ContentDescription,
		Category:    "monument",
		Location:    "Castello",
		Tags:        []string{"restoration", "modern", "tourism"},
		SourcePage:  17,
	},
	{
		Title: "Cattedrale - Architettura",
		Content: `La facciata della Cattedrale sembra sospirare davanti alla bellezza del centro lucano adagiato ai suoi piedi. Indossa un abito di luce ispirato ai raggi del sole d'autunno e cela un cuore antico e profondo, oggi parte dell'immenso patrimonio architettonico di Muro Lucano.

La nuova Cattedrale a croce latina ti accoglie con le quattro lesene con capitelli corinzi al di sotto del frontone triangolare. Sono diversi i documenti che fanno risalire le prime fondamenta della cattedrale rupestre interrata al XI secolo.`,
		ContentType: knowledgeModel.ContentDescription,
		Category:    "religious",
		Location:    "Cattedrale",
		Tags:        []string{"architecture", "church", "romanesque"},
		SourcePage:  19,
	},
	{
		Title: "Cattedrale - Scoperta Rupestre",
		Content: `Per l'intero territorio il sisma del 1980 fu ferita insanabile. La Cattedrale vide distrutti gli affreschi decorativi delle sue volte. Eppure il sisma divenne disvelamento. Al di sotto della cattedrale apparvero le rovine di una chiesa a tre navate e cinque dei totali otto pilastri su cui erano posate. Il sisma svelò anche parte della pavimentazione e uno stipite del portale.`,
		ContentType: knowledgeModel.ContentHistory,
		Category:    "religious",
		Location:    "Cattedrale",
		Tags:        []string{"archaeology", "earthquake", "discovery"},
		SourcePage:  19,
	},
	{
		Title: "Cattedrale - Cappella Gerardina e Tesori",
		Content: `Le tre cappelle speciali ricavate nella Chiesa sono dedicate a San Gerardo, all'Immacolata e al SS Sacramento. La cappella gerardina fu costruita nel 1895 per celebrare la beatificazione di Gerardo Maiella, mentre nel 1927 Emilio Saggese realizzò la nicchia con decorazioni in marmo e stucco.

Oltre alla Madonna del Rosario dipinta su tavola, la cattedrale ospita 6 oli su tela di Anselmo Palmieri datati 1727-28, il trono episcopale ligneo del 1621 e il suo postergale artistico con baldacchino donato da Benedetto XIII nel 1728.`,
		ContentType: knowledgeModel.ContentDescription,
		Category:    "religious",
		Location:    "Cattedrale",
		Tags:        []string{"art", "san gerardo", "religious art"},
		SourcePage:  19,
	},
	{
		Title: "Museo Diocesano - Origine e Missione",
		Content: `La storia del Museo Diocesano è la contronarrazione, condivisa con la scoperta degli ipogei al di sotto della Cattedrale, di come il sisma del 1980 generò luce. Il Museo Diocesano nasce per fare da culla e dimora ai beni della Cattedrale e di altre chiese muresi che dopo la calamità naturale rischiavano di andare perduti e di subire danni irreversibili.

Il cuore della costruzione rupestre si trova al di sotto del transetto della nuova Cattedrale dove fu scoperta una Cripta a cui si accede attraverso una piccola anticamera.`,
		ContentType: knowledgeModel.ContentHistory,
		Category:    "museum",
		Location:    "Museo Diocesano",
		Tags:        []string{"museum", "earthquake", "preservation"},
		SourcePage:  21,
	},
	{
		Title: "Museo Diocesano - Tesoro Valadier",
		Content: `Muro Lucano custodisce il servizio in argento dorato per pontificale e i paramenti preziosi del prestigioso Tesoro del Cardinale Orsini realizzato dal maestro Valadier. Luigi Valadier è considerato il più noto e talentuoso orafo, ebanista e fonditore del 1700.

Il tesoro di Valadier conservato a Muro Lucano è considerato uno dei più pregiati lavori del maestro: le opere hanno attraversato il mare per la straordinaria mostra dedicata a Valadier a New York nel 2018 e sono spesso testimoni della grandezza dell'artista in eventi di grande richiamo nazionale e internazionale.`,
		ContentType: knowledgeModel.ContentDescription,
		Category:    "museum",
		Location:    "Museo Diocesano",
		Tags:        []string{"art", "valadier", "silverwork", "treasure"},
		SourcePage:  21,
	},
	{
		Title: "San Gerardo Maiella - Vita del Santo",
		Content: `È qui, al civico 65 del Borgo Pianello, che nasce il 6 aprile 1726 San Gerardo. L'umile casa in cui Gerardo schiuse gli occhi e in cui visse fino a 6/7 anni è irta su pochi gradini che la sollevano di pochi metri rispetto alla viuzza in pietra del Borgo.

Gerardo era unico figlio maschio della famiglia dopo le sorelle Brigida, Anna ed Elisabetta. Fu il luogo in cui fin da piccolo sentì forte lo Spirito e il desiderio ardente di lodare e celebrare Gesù. Dalla casa in vico Celso, andò a bottega presso il vicino sarto del quartiere, Martino Pannuto. A Materdonimi, a soli 29 anni, Gerardo lasciò la vita terrena. Nel cuore la vocazione e la purezza di quello che di sé disse "vado a farmi santo" e santo fu.`,
		ContentType: knowledgeModel.ContentHistory,
		Category:    "religious",
		Location:    "Casa di San Gerardo Maiella",
		Tags:        []string{"saint", "biography", "religion", "patrono basilicata"},
		SourcePage:  33,
	},
	{
		Title: "Eventi - Sagra della Patata",
		Content: `La Patata di Montagna di Muro Lucano, marchio De.C.O., è celebrata attraverso la Sagra della Patata di Montagna la cui prima edizione è fissata al 2009. L'evento settembrino, tra quelli più noti proposti dalla città di Muro Lucano, ospita più di 20 mila presenze nelle sole tre giornate di manifestazione.

Un momento di riconoscimento alla vocazione dei contadini e delle associazioni locali che hanno contribuito alla salvaguardia del tubero autoctono e al suo recente riconoscimento nazionale.`,
		ContentType: knowledgeModel.ContentEvent,
		Category:    "food",
		Location:    "Muro Lucano",
		Tags:        []string{"festival", "food", "potato", "tradition"},
		SourcePage:  47,
	},
	{
		Title: "Eventi - Festa di San Gerardo",
		Content: `La Celebrazione della Festività di San Gerardo, il 2 settembre, è amata per il suo carattere sacro e affettivo. La festa patronale segue di pochi giorni Borgo InVita, straordinario momento di convivialità, musica, bellezza e socialità che accende di note, luci e profumi i vicoli magici di Borgo Pianello.

La festa di San Gerardo include processioni religiose, fuochi d'artificio nella notte sacra e carica di emozione, e rappresenta il momento più importante dell'anno per la comunità murese.`,
		ContentType: knowledgeModel.ContentEvent,
		Category:    "religious",
		Location:    "Muro Lucano",
		Tags:        []string{"festival", "san gerardo", "tradition", "religion"},
		SourcePage:  47,
	},
	{
		Title: "Prodotti Tipici - Eccellenze Gastronomiche",
		Content: `Eccellenze territoriali sono il miele, lo zafferano, il tartufo, l'olio, la birra, i fagioli bianchi, i diversi formaggi prodotti nell'area, dal pecorino, al cacioricotta, alla scamorza e al provolone. Menzione speciale per la carne di agnello, la cui qualità è parte determinante nella cultura del lavoro delle aziende del territorio.

Dall'eccezionale e unico clima di montagna alla lunga e complessa tradizione della trasformazione dei prodotti tipici del territorio nasce la mappa della memoria del gusto.`,
		ContentType: knowledgeModel.ContentFood,
		Category:    "food",
		Location:    "Muro Lucano",
		Tags:        []string{"food", "local products", "gastronomy", "cheese", "honey"},
		SourcePage:  47,
	},
	{
		Title: "Storia - Origini di Numistrum",
		Content: `Muro Lucano nasce Numistrum, nella zona che oggi è Raia San Basilio. Numistrum fu teatro della furente battaglia che nel 210 a.C. vide l'eroe Annibale a capo dell'esercito cartaginese e il console romano Claudio Marcello affrontarsi in campo aperto. La battaglia di Numistrum si inserisce tra le vicende della Seconda Guerra Punica.

I racconti di fondazione ricchi di epica e poesia sono un canto celebrativo che danza sulla linea del tempo e della leggenda che si toccano sull'arco del ponte romano edificato intorno al 1100.`,
		ContentType: knowledgeModel.ContentHistory,
		Category:    "history",
		Location:    "Muro Lucano",
		Tags:        []string{"ancient history", "roman", "hannibal", "numistrum"},
		SourcePage:  7,
	},
	{
		Title: "Storia - Medioevo e Pianello",
		Content: `Tra purezza e incanto, le prime comunità scelsero intorno al IX secolo il Pianello, il luogo più inaccessibile tra gli aguzzi spuntoni di rocce e qui nacquero i primi insediamenti. Il bisogno dell'acqua disegnerà la strada delle Ripe, percorsa quotidianamente dagli abitanti del Pianello fino alla Fontana delle Ripe.

Nel periodo normanno-svevo, l'arte e il lavoro diedero forma e necessità alla costruzione della gualchiera e di un mulino. Alle prime infrastrutture seguirono negli anni successivi diverse nuove costruzioni indispensabili all'economia e alla lavorazione delle materie prime.`,
		ContentType: knowledgeModel.ContentHistory,
		Category:    "history",
		Location:    "Borgo Pianello",
		Tags:        []string{"medieval", "settlement", "urban development"},
		SourcePage:  7,
	},
	{
		Title: "Personaggi Illustri - Joseph Stella",
		Content: `Joseph Stella, primo pittore futurista d'America, nato a Muro Lucano nel giugno 1877. Percorsi di vita in cui brilla la città, tratteggiata così da Joseph Stella che definì la contemplazione delle bellezze della città "lo schiudersi repentino di una luce, fragore come cascata celeste, esplosione d'oro di un tramonto autunnale in cima ad uno dei miei monti".

Nelle opere dell'artista futurista l'America ammirò linee e tratti che sembrano rievocare scorci muresi eco delle Ripe.`,
		ContentType: knowledgeModel.ContentStory,
		Category:    "culture",
		Location:    "Muro Lucano",
		Tags:        []string{"art", "futurism", "famous people", "joseph stella"},
		SourcePage:  9,
	},
	{
		Title: "Personaggi Illustri - Ron Galella",
		Content: `Ron Galella, il più famoso fotografo delle star, nato a New York nel 1931 e figlio di Vincenzo Galella, ebanista nato a Muro Lucano. Il Godfather of U.S. Paparazzi culture ha costruito con i suoi scoop l'immaginario collettivo delle star del suo tempo, creando uno stile personalissimo di grande impatto.

Una mostra permanente degli scatti di Ron Galella è ospitata presso il Museo Archeologico Nazionale.`,
		ContentType: knowledgeModel.ContentStory,
		Category:    "culture",
		Location:    "Muro Lucano",
		Tags:        []string{"photography", "famous people", "ron galella", "celebrity"},
		SourcePage:  9,
	},
}

var personas = []chatModel.Persona{
	{
		Id:          "historian",
		Name:        "Don Michele",
		Description: "Storico locale, conosce ogni data e ogni pietra di Muro Lucano",
		ToneInstructions: "Speak as a meticulous local historian. Cite centuries, names and " +
			"dates precisely, and connect each monument to the wider history of Basilicata.",
	},
	{
		Id:          "storyteller",
		Name:        "Nonna Lucia",
		Description: "Nonna del Borgo Pianello, custode di leggende e racconti popolari",
		ToneInstructions: "Speak warmly like a grandmother telling stories by the fireplace. " +
			"Favor legends, anecdotes and sensory detail over dates and figures.",
	},
	{
		Id:          "naturalist",
		Name:        "Marco",
		Description: "Guida escursionistica, esperto delle Ripe e del Bosco Grande",
		ToneInstructions: "Speak as an enthusiastic hiking guide. Focus on trails, wildlife, " +
			"seasons and practical advice for exploring the canyon and the mountains.",
	},
}
