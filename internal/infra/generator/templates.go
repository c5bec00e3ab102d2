package generator

import (
	"descu/internal/domain/entity"
)

// template is a concrete listing blueprint: localized title variants, a
// base price the jitter is applied to, and an image reference.
type template struct {
	titles    map[entity.Locale]string
	basePrice int64
	image     string
}

func (t template) title(locale entity.Locale) string {
	if title, ok := t.titles[locale]; ok {
		return title
	}

	return t.titles[entity.DefaultLocale]
}

func newTemplate(zh, en, es string, basePrice int64, image string) template {
	return template{
		titles: map[entity.Locale]string{
			entity.LocaleChinese: zh,
			entity.LocaleEnglish: en,
			entity.LocaleSpanish: es,
		},
		basePrice: basePrice,
		image:     image,
	}
}

// templatePools holds the per-category listing blueprints the generator
// draws from.
var templatePools = map[entity.Category][]template{
	entity.CategoryVehicles: {
		newTemplate("大众 Jetta 2019", "Volkswagen Jetta 2019", "Volkswagen Jetta 2019 Sportline", 240000, "https://images.unsplash.com/photo-1541899481282-d53bffe3c35d?w=800&q=80"),
		newTemplate("日产 Versa 2020", "Nissan Versa 2020", "Nissan Versa 2020 Drive", 190000, "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=800&q=80"),
		newTemplate("雪佛兰 Aveo 2018", "Chevrolet Aveo 2018", "Chevrolet Aveo 2018 LS", 150000, "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&q=80"),
		newTemplate("吉普 Wrangler 2015", "Jeep Wrangler 2015", "Jeep Wrangler 2015 4x4", 450000, "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?w=800&q=80"),
		newTemplate("本田 CR-V 2017", "Honda CR-V 2017", "Honda CR-V 2017 Turbo", 320000, "https://images.unsplash.com/photo-1568844293986-8d0400bd4745?w=800&q=80"),
		newTemplate("马自达 3 掀背车", "Mazda 3 Hatchback", "Mazda 3 Hatchback Grand Touring", 280000, "https://images.unsplash.com/photo-1542362567-b07e54358753?w=800&q=80"),
		newTemplate("福特 Mustang GT", "Ford Mustang GT", "Ford Mustang GT V8", 650000, "https://images.unsplash.com/photo-1584345604476-8ec5e12e42dd?w=800&q=80"),
		newTemplate("丰田 Prius 混动", "Toyota Prius Hybrid", "Toyota Prius Híbrido Base", 310000, "https://images.unsplash.com/photo-1619767886558-efdc259cde1a?w=800&q=80"),
	},
	entity.CategoryRealEstate: {
		newTemplate("市中心两室公寓", "2 Bedroom Apartment City Center", "Depa 2 Recámaras en La Condesa", 4500000, "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80"),
		newTemplate("Polanco 豪华公寓", "Luxury Apt in Polanco", "Departamento de Lujo en Polanco", 8500000, "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&q=80"),
		newTemplate("罗马区单间出租", "Studio for Rent Roma Norte", "Se Renta Loft en Roma Norte", 12000, "https://images.unsplash.com/photo-1554995207-c18c203602cb?w=800&q=80"),
		newTemplate("带花园的房子", "House with Garden", "Casa con Jardín Amplio", 3200000, "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&q=80"),
		newTemplate("合租卧室", "Room for Rent", "Cuarto en Renta Coyoacán", 5500, "https://images.unsplash.com/photo-1598928506311-c55ded91a20c?w=800&q=80"),
	},
	entity.CategoryElectronics: {
		newTemplate("iPhone 14 Pro Max 256G", "iPhone 14 Pro Max 256G", "iPhone 14 Pro Max 256G Libre", 18500, "https://images.unsplash.com/photo-1678685888221-a0e279567042?w=800&q=80"),
		newTemplate("Sony WH-1000XM5", "Sony WH-1000XM5 Headphones", "Audífonos Sony WH-1000XM5", 5500, "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=800&q=80"),
		newTemplate("MacBook Air M2", "MacBook Air M2", "MacBook Air M2 Chip", 19000, "https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?w=800&q=80"),
		newTemplate("任天堂 Switch OLED", "Nintendo Switch OLED", "Nintendo Switch OLED", 6200, "https://images.unsplash.com/photo-1640955307798-8e652c79f329?w=800&q=80"),
		newTemplate("PlayStation 5", "PlayStation 5 Console", "Consola PlayStation 5 Edición Disco", 9500, "https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=800&q=80"),
		newTemplate("iPad Air 5", "iPad Air 5th Gen", "iPad Air 5ta Generación", 11000, "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=800&q=80"),
		newTemplate("三星 Galaxy S23", "Samsung Galaxy S23", "Samsung Galaxy S23 Ultra", 21000, "https://images.unsplash.com/photo-1610945265078-3858a0828630?w=800&q=80"),
		newTemplate("佳能 EOS R6", "Canon EOS R6 Camera", "Cámara Canon EOS R6 Cuerpo", 42000, "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=800&q=80"),
	},
	entity.CategoryServices: {
		newTemplate("专业英语辅导", "Professional English Tutoring", "Clases de Inglés Profesionales", 300, "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=800&q=80"),
		newTemplate("家政清洁服务", "Home Cleaning Service", "Servicio de Limpieza a Domicilio", 450, "https://images.unsplash.com/photo-1581578731117-104f2a41272c?w=800&q=80"),
		newTemplate("电脑维修", "Computer Repair", "Reparación de Computadoras", 500, "https://images.unsplash.com/photo-1597872200969-2b65d56bd16b?w=800&q=80"),
		newTemplate("搬家服务", "Moving Service", "Fletes y Mudanzas Económicas", 1500, "https://images.unsplash.com/photo-1600518464441-9154a4dea21b?w=800&q=80"),
		newTemplate("私人健身教练", "Personal Trainer", "Entrenador Personal Gym", 350, "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=800&q=80"),
	},
	entity.CategoryFurniture: {
		newTemplate("宜家 POÄNG 扶手椅", "IKEA POÄNG Chair", "Sillón IKEA POÄNG", 1200, "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=800&q=80"),
		newTemplate("复古实木咖啡桌", "Vintage Coffee Table", "Mesa de Centro Vintage", 1500, "https://images.unsplash.com/photo-1532372320572-cda25653a26d?w=800&q=80"),
		newTemplate("双人床架", "Queen Size Bed Frame", "Base de Cama Queen Size", 2500, "https://images.unsplash.com/photo-1505693416388-b0346efee539?w=800&q=80"),
		newTemplate("办公桌", "Office Desk", "Escritorio para Home Office", 1800, "https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?w=800&q=80"),
		newTemplate("落地灯", "Floor Lamp", "Lámpara de Pie Moderna", 800, "https://images.unsplash.com/photo-1507473888900-52e1adad5481?w=800&q=80"),
	},
	entity.CategoryClothing: {
		newTemplate("Nike Air Force 1 板鞋", "Nike Air Force 1", "Tenis Nike Air Force 1", 1800, "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=800&q=80"),
		newTemplate("北面羽绒服", "The North Face Jacket", "Chamarra The North Face", 3200, "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=800&q=80"),
		newTemplate("Zara 连衣裙", "Zara Dress", "Vestido Zara Nuevo", 600, "https://images.unsplash.com/photo-1496747611176-843222e1e57c?w=800&q=80"),
		newTemplate("Levi's 501 牛仔裤", "Levi's 501 Jeans", "Jeans Levi's 501 Originales", 850, "https://images.unsplash.com/photo-1542272454374-d41e38747600?w=800&q=80"),
		newTemplate("RayBan 太阳镜", "RayBan Sunglasses", "Lentes de Sol RayBan Aviator", 2200, "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=800&q=80"),
	},
	entity.CategorySports: {
		newTemplate("Giant Escape 1 公路车", "Giant Escape 1 Bike", "Bicicleta Giant Escape 1", 8500, "https://images.unsplash.com/photo-1485965120184-e220f721d03e?w=800&q=80"),
		newTemplate("Adidas Ultraboost", "Adidas Ultraboost", "Adidas Ultraboost Running", 2400, "https://images.unsplash.com/photo-1587563871167-1ee9c731aefb?w=800&q=80"),
		newTemplate("瑜伽垫", "Yoga Mat", "Tapete de Yoga Profesional", 400, "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=800&q=80"),
		newTemplate("Wilson 网球拍", "Wilson Tennis Racket", "Raqueta de Tenis Wilson", 1800, "https://images.unsplash.com/photo-1617083934555-563404543d35?w=800&q=80"),
		newTemplate("哑铃套装", "Dumbbell Set", "Set de Mancuernas Pesas", 1200, "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=800&q=80"),
	},
	entity.CategoryBooks: {
		newTemplate("哈利波特全集", "Harry Potter Set", "Colección Harry Potter Libros", 1500, "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=800&q=80"),
		newTemplate("百年孤独", "One Hundred Years of Solitude", "Cien Años de Soledad Primera Edición", 300, "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=800&q=80"),
		newTemplate("建筑设计教材", "Architecture Textbooks", "Libros de Arquitectura", 800, "https://images.unsplash.com/photo-1532012197267-da84d127e765?w=800&q=80"),
	},
	entity.CategoryOther: {
		newTemplate("原声吉他", "Acoustic Guitar", "Guitarra Acústica Fender", 3500, "https://images.unsplash.com/photo-1510915361894-db8b60106cb1?w=800&q=80"),
		newTemplate("尤克里里", "Ukulele", "Ukulele Soprano", 800, "https://images.unsplash.com/photo-1577640905050-83665af216b9?w=800&q=80"),
		newTemplate("工具箱套装", "Toolbox Set", "Caja de Herramientas Completa", 1200, "https://images.unsplash.com/photo-1530124566582-a618bc2615dc?w=800&q=80"),
	},
}

// descriptionPools holds the per-locale description snippets.
var descriptionPools = map[entity.Locale][]string{
	entity.LocaleChinese: {
		"成色很新，功能正常。买了一年多但几乎没怎么用。包装盒都在。因搬家低价转让。",
		"非常好的状态，保养得当。价格可小刀，仅限同城面交。",
		"闲置物品处理，9成新，无划痕。懂的来，手慢无。",
		"急出！搬家带不走，便宜卖了。功能完好，即买即用。",
		"全新未拆封，年会奖品。用不上所以转让。",
	},
	entity.LocaleEnglish: {
		"Mint condition, used gently. Functioning perfectly. Bought it a year ago but hardly used it.",
		"Great condition, well maintained. Price negotiable, pickup only.",
		"Selling this pre-loved item. 9/10 condition, no scratches. First come first serve.",
		"Urgent sale! Moving out, must go. Works perfectly.",
		"Brand new, sealed in box. Won it as a prize, don't need it.",
	},
	entity.LocaleSpanish: {
		"En excelentes condiciones, funciona al 100. Lo compré hace un año pero casi no lo uso. Entrego en punto medio.",
		"Muy buen estado, cuidado. Precio a tratar un poco. Solo efectivo.",
		"Vendo por mudanza. Estética de 9.5, sin detalles. Urge vender.",
		"Jala al cien, cualquier prueba. Entrego en metro línea 2 o plaza comercial.",
		"Nuevo en caja cerrada. Me lo gané en una rifa y no lo ocupo.",
	},
}

func descriptions(locale entity.Locale) []string {
	if pool, ok := descriptionPools[locale]; ok {
		return pool
	}

	return descriptionPools[entity.DefaultLocale]
}
